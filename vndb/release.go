package vndb

import (
	"encoding/json"
	"fmt"
)

// Release is a record returned by the release endpoint.
type Release struct {
	ID         string            `json:"id" jsonschema:"description=VNDB id of the release."`
	Title      string            `json:"title,omitempty"`
	AltTitle   string            `json:"alttitle,omitempty"`
	Languages  []ReleaseLanguage `json:"languages,omitempty"`
	Platforms  []string          `json:"platforms,omitempty"`
	Media      []Media           `json:"media,omitempty"`
	VNs        []ReleaseVN       `json:"vns,omitempty" jsonschema:"description=Visual novels this release is linked to."`
	Producers  []ReleaseProducer `json:"producers,omitempty"`
	Released   string            `json:"released,omitempty"`
	MinAge     *int              `json:"minage,omitempty" jsonschema:"description=Age rating. Absent when unknown."`
	Patch      bool              `json:"patch,omitempty"`
	Freeware   bool              `json:"freeware,omitempty"`
	Uncensored *bool             `json:"uncensored,omitempty"`
	Official   bool              `json:"official,omitempty"`
	HasEro     bool              `json:"has_ero,omitempty"`
	Resolution *Resolution       `json:"resolution,omitempty"`
	Engine     string            `json:"engine,omitempty"`
	Voiced     *int              `json:"voiced,omitempty" jsonschema:"description=1 not voiced. 2 ero scenes only. 3 partially. 4 fully voiced."`
	Notes      string            `json:"notes,omitempty"`
	GTIN       string            `json:"gtin,omitempty" jsonschema:"description=JAN/EAN/UPC code."`
	Catalog    string            `json:"catalog,omitempty"`
	ExtLinks   []ExtLink         `json:"extlinks,omitempty"`
}

// ReleaseLanguage is a language a release is available in.
type ReleaseLanguage struct {
	Lang  string `json:"lang"`
	Title string `json:"title,omitempty" jsonschema:"description=Title in this language. Absent when it equals the main title."`
	Latin string `json:"latin,omitempty"`
	MTL   bool   `json:"mtl" jsonschema:"description=Whether this is a machine translation."`
	Main  bool   `json:"main"`
}

// Media is a medium a release is distributed on.
type Media struct {
	Medium string `json:"medium"`
	Qty    int    `json:"qty" jsonschema:"description=Quantity. 0 where it does not apply."`
}

// ReleaseVN is a visual novel linked to a release.
type ReleaseVN struct {
	RType string `json:"rtype,omitempty" jsonschema:"enum=trial,enum=partial,enum=complete"`
	VisualNovel
}

// ReleaseProducer is a producer credited on a release.
type ReleaseProducer struct {
	Developer bool `json:"developer"`
	Publisher bool `json:"publisher"`
	Producer
}

// Resolution is either a width and height pair or "non-standard".
type Resolution struct {
	Width, Height int
	NonStandard   bool
}

func (r Resolution) String() string {
	if r.NonStandard {
		return "non-standard"
	}
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

func (r *Resolution) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		*r = Resolution{NonStandard: true}
		return nil
	}

	var dims []int
	if err := json.Unmarshal(data, &dims); err != nil {
		return fmt.Errorf("resolution: %w", err)
	}
	if len(dims) != 2 {
		return fmt.Errorf("resolution: expected 2 dimensions, got %d", len(dims))
	}

	*r = Resolution{Width: dims[0], Height: dims[1]}
	return nil
}

func (r Resolution) MarshalJSON() ([]byte, error) {
	if r.NonStandard {
		return json.Marshal("non-standard")
	}
	return json.Marshal([]int{r.Width, r.Height})
}

// ExtLink is a link to an external site.
type ExtLink struct {
	URL   string `json:"url"`
	Label string `json:"label" jsonschema:"description=English label for the link."`
	Name  string `json:"name" jsonschema:"description=Internal identifier of the site."`
	// ID is the remote identifier, a string or a number depending on the site.
	ID any `json:"id,omitempty"`
}
