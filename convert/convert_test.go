/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package convert_test

import (
	"strings"
	"testing"

	"bennypowers.dev/svginline/convert"
	"bennypowers.dev/svginline/diagnostic"
	"bennypowers.dev/svginline/testutil"
	"bennypowers.dev/svginline/transform"
)

func TestConvert_Default(t *testing.T) {
	got, err := convert.Convert(`<svg width="1"><path/></svg>`, convert.Options{Reporter: diagnostic.Discard})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := `module.exports = "<svg><path></path></svg>"`
	if string(got) != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestConvert_Golden(t *testing.T) {
	icon := string(testutil.LoadFixtureFile(t, "fixtures/svg/icon.svg"))

	for _, format := range []convert.Format{convert.FormatESM, convert.FormatTypeScript} {
		t.Run(string(format), func(t *testing.T) {
			got, err := convert.Convert(icon, convert.Options{
				Format:       format,
				ResourcePath: "icons/icon.svg",
				Reporter:     diagnostic.Discard,
				Transform: &transform.Options{
					ClassPrefix:       transform.String("[name]-"),
					IDPrefix:          transform.String("[name]-"),
					RemovedTags:       []string{"title", "script"},
					RemovedAttributes: []string{"onclick"},
				},
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.AssertGolden(t, "golden/convert/icon"+format.Extension(), got)
		})
	}
}

func TestConvert_UnknownFormat(t *testing.T) {
	var c diagnostic.Collector
	_, err := convert.Convert(`<svg><script></script></svg>`, convert.Options{
		Format:    convert.Format("bogus"),
		Reporter:  &c,
		Transform: &transform.Options{WarningTags: []string{"script"}},
	})
	if err == nil || !strings.Contains(err.Error(), "bogus") {
		t.Fatalf("expected unknown format error, got %v", err)
	}
	if c.Len() != 0 {
		t.Errorf("expected no extraction for an unknown format, got %d diagnostics", c.Len())
	}
}
