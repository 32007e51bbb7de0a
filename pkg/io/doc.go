// Package io provides JSON import and export of language usage.
//
// # Overview
//
// Usage files let cards be rendered without talking to GitHub: fetch once
// with "toplangs fetch", edit or merge the file, then render it as often
// as needed.
//
// # JSON Format
//
// The canonical form is an object keyed by language name:
//
//	{
//	  "Go": {
//	    "name": "Go",
//	    "size": 3000,
//	    "color": "#00ADD8"
//	  },
//	  "Shell": {
//	    "name": "Shell",
//	    "size": 700
//	  }
//	}
//
// Fields:
//   - name: display name (defaults to the key)
//   - size: bytes of code, or a weighted score; must not be negative
//   - color: "#rrggbb" swatch colour; invalid or missing colours render grey
//
// [ReadUsage] also accepts a plain array of languages.
//
// # Usage
//
//	usage, err := io.ImportUsage("octocat.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := toplangs.New().Render(usage, toplangs.Options{})
package io
