// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dblp

import (
	"encoding/json"
	"strconv"
	"strings"
)

// DBLP search API JSON structures. Both the publication and the author
// endpoint share the result/hits/hit envelope; the info payload differs.
type searchResponse struct {
	Result struct {
		Hits struct {
			Hit []hit `json:"hit"`
		} `json:"hits"`
	} `json:"result"`
}

type hit struct {
	Info hitInfo `json:"info"`
}

type hitInfo struct {
	Title   flexString `json:"title"`
	Authors hitAuthors `json:"authors"`
	Year    flexString `json:"year"`
	Type    string     `json:"type"`
	Venue   flexString `json:"venue"`
	Volume  flexString `json:"volume"`
	DOI     string     `json:"doi"`
	URL     string     `json:"url"`

	// Author is set on author-search hits only.
	Author flexString `json:"author"`
}

type hitAuthors struct {
	Author authorList `json:"author"`
}

type authorRef struct {
	PID  string `json:"@pid"`
	Text string `json:"text"`
}

// authorList absorbs DBLP's single-object-or-list polymorphism: a hit with
// one author carries an object where a multi-author hit carries an array.
type authorList []authorRef

func (l *authorList) UnmarshalJSON(data []byte) error {
	var many []authorRef
	if err := json.Unmarshal(data, &many); err == nil {
		*l = many
		return nil
	}
	var one authorRef
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*l = authorList{one}
	return nil
}

// flexString absorbs the remaining shape variance in DBLP info fields:
// plain strings, numbers (years), arrays (venues), and tagged objects with
// a "text" member all decode to a plain string.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		*f = flexString(n.String())
		return nil
	}

	var list []flexString
	if err := json.Unmarshal(data, &list); err == nil {
		if len(list) > 0 {
			*f = list[0]
		} else {
			*f = ""
		}
		return nil
	}

	var tagged struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(data, &tagged); err != nil {
		return err
	}
	*f = flexString(tagged.Text)
	return nil
}

// yearOf parses the hit year, returning 0 when missing or unparseable.
func yearOf(f flexString) int {
	y, err := strconv.Atoi(strings.TrimSpace(string(f)))
	if err != nil || y < 0 {
		return 0
	}
	return y
}
