/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package loader

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/tidwall/jsonc"

	"bennypowers.dev/svginline/transform"
)

// ParseQuery decodes loader options from a resource query.
//
// Two forms are accepted. A query starting with "{" is a JSON object,
// comments and trailing commas allowed:
//
//	?{"classPrefix": "icon-", "removedTags": ["title"]}
//
// Otherwise the query is a list of "&"-separated arguments:
//
//	?classPrefix=icon-&removedTags=title,desc&warningTags[]=script&-removeRootSVGAttributes
//
// where "name[]=v" appends to a list, "+name" and a bare "name" mean true,
// "-name" means false, and the values "true", "false" and "null" are
// converted. Lists may also be given comma-separated.
func ParseQuery(query string) (transform.Options, error) {
	query = strings.TrimPrefix(query, "?")
	if strings.TrimSpace(query) == "" {
		return transform.Options{}, nil
	}

	if strings.HasPrefix(strings.TrimSpace(query), "{") {
		var m map[string]any
		if err := json.Unmarshal(jsonc.ToJSON([]byte(query)), &m); err != nil {
			return transform.Options{}, fmt.Errorf("parsing loader query: %w", err)
		}
		return transform.OptionsFromMap(m), nil
	}

	m := make(map[string]any)
	for _, arg := range strings.Split(query, "&") {
		if arg == "" {
			continue
		}
		name, value, hasValue := strings.Cut(arg, "=")
		name, err := url.PathUnescape(name)
		if err != nil {
			return transform.Options{}, fmt.Errorf("parsing loader query argument %q: %w", arg, err)
		}

		if !hasValue {
			switch {
			case strings.HasPrefix(name, "-"):
				m[name[1:]] = false
			case strings.HasPrefix(name, "+"):
				m[name[1:]] = true
			default:
				m[name] = true
			}
			continue
		}

		value, err = url.PathUnescape(value)
		if err != nil {
			return transform.Options{}, fmt.Errorf("parsing loader query argument %q: %w", arg, err)
		}

		if list, ok := strings.CutSuffix(name, "[]"); ok {
			existing, _ := m[list].([]any)
			m[list] = append(existing, value)
			continue
		}

		switch value {
		case "true":
			m[name] = true
		case "false":
			m[name] = false
		case "null":
			delete(m, name)
		default:
			m[name] = value
		}
	}
	return transform.OptionsFromMap(m), nil
}
