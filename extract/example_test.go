/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package extract_test

import (
	"fmt"

	"bennypowers.dev/svginline/diagnostic"
	"bennypowers.dev/svginline/extract"
	"bennypowers.dev/svginline/transform"
)

func ExampleExtract() {
	svg := `<svg width="16" height="16"><defs><circle id="dot" r="1"/></defs><use xlink:href="#dot"/></svg>`

	fmt.Println(extract.Extract(svg, &extract.Options{
		Transform: &transform.Options{IDPrefix: transform.String("icon-")},
		Reporter:  diagnostic.Discard,
	}))
	// Output: <svg><defs><circle id="icon-dot" r="1"></circle></defs><use xlink:href="#icon-dot"></use></svg>
}

func ExampleSanitized() {
	fmt.Println(extract.Sanitized("<?xml version=\"1.0\"?>\n<svg>\n  <!-- note -->\n  <path/>\n</svg>\n"))
	// Output: <svg><path></path></svg>
}
