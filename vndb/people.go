package vndb

// Producer is a record returned by the producer endpoint.
type Producer struct {
	ID          string   `json:"id" jsonschema:"description=VNDB id of the producer."`
	Name        string   `json:"name,omitempty"`
	Original    string   `json:"original,omitempty" jsonschema:"description=Name in the original script."`
	Aliases     []string `json:"aliases,omitempty"`
	Lang        string   `json:"lang,omitempty" jsonschema:"description=Primary language."`
	Type        string   `json:"type,omitempty" jsonschema:"enum=co,enum=in,enum=ng"`
	Description string   `json:"description,omitempty"`
}

// Character is a record returned by the character endpoint.
type Character struct {
	ID          string           `json:"id" jsonschema:"description=VNDB id of the character."`
	Name        string           `json:"name,omitempty"`
	Original    string           `json:"original,omitempty"`
	Aliases     []string         `json:"aliases,omitempty"`
	Description string           `json:"description,omitempty"`
	Image       *Image           `json:"image,omitempty"`
	BloodType   string           `json:"blood_type,omitempty" jsonschema:"enum=a,enum=b,enum=ab,enum=o"`
	Height      int              `json:"height,omitempty" jsonschema:"description=Height in cm."`
	Weight      int              `json:"weight,omitempty" jsonschema:"description=Weight in kg."`
	Bust        int              `json:"bust,omitempty"`
	Waist       int              `json:"waist,omitempty"`
	Hips        int              `json:"hips,omitempty"`
	Cup         string           `json:"cup,omitempty"`
	Age         int              `json:"age,omitempty"`
	Birthday    []int            `json:"birthday,omitempty" jsonschema:"description=Month and day."`
	Sex         []string         `json:"sex,omitempty" jsonschema:"description=Apparent sex and real sex."`
	VNs         []CharacterVN    `json:"vns,omitempty"`
	Traits      []CharacterTrait `json:"traits,omitempty"`
}

// CharacterVN is a visual novel a character appears in.
type CharacterVN struct {
	Spoiler int      `json:"spoiler,omitempty"`
	Role    string   `json:"role,omitempty" jsonschema:"enum=main,enum=primary,enum=side,enum=appears"`
	Release *Release `json:"release,omitempty"`
	VisualNovel
}

// CharacterTrait is a trait applied to a character.
type CharacterTrait struct {
	Spoiler int  `json:"spoiler,omitempty"`
	Lie     bool `json:"lie,omitempty"`
	Trait
}

// Staff is a record returned by the staff endpoint.
type Staff struct {
	ID          string       `json:"id" jsonschema:"description=VNDB id of the staff member."`
	AID         int          `json:"aid,omitempty" jsonschema:"description=Alias id."`
	IsMain      bool         `json:"ismain,omitempty" jsonschema:"description=Whether name and original are the main name of the entry."`
	Name        string       `json:"name,omitempty"`
	Original    string       `json:"original,omitempty"`
	Lang        string       `json:"lang,omitempty"`
	Gender      string       `json:"gender,omitempty" jsonschema:"enum=m,enum=f"`
	Description string       `json:"description,omitempty"`
	ExtLinks    []ExtLink    `json:"extlinks,omitempty"`
	Aliases     []StaffAlias `json:"aliases,omitempty"`
}

// StaffAlias is a name used by a staff member.
type StaffAlias struct {
	AID    int    `json:"aid"`
	Name   string `json:"name"`
	Latin  string `json:"latin,omitempty"`
	IsMain bool   `json:"ismain"`
}

// Tag is a record returned by the tag endpoint.
type Tag struct {
	ID          string   `json:"id" jsonschema:"description=VNDB id of the tag."`
	Name        string   `json:"name,omitempty"`
	Aliases     []string `json:"aliases,omitempty"`
	Description string   `json:"description,omitempty"`
	Category    string   `json:"category,omitempty" jsonschema:"enum=cont,enum=ero,enum=tech"`
	Searchable  bool     `json:"searchable,omitempty"`
	Applicable  bool     `json:"applicable,omitempty"`
	VNCount     int      `json:"vn_count,omitempty" jsonschema:"description=Number of visual novels tagged including child tags."`
}

// Trait is a record returned by the trait endpoint.
// Trait names are not unique and should be shown with their group.
type Trait struct {
	ID          string   `json:"id" jsonschema:"description=VNDB id of the trait."`
	Name        string   `json:"name,omitempty"`
	Aliases     []string `json:"aliases,omitempty"`
	Description string   `json:"description,omitempty"`
	Searchable  bool     `json:"searchable,omitempty"`
	Applicable  bool     `json:"applicable,omitempty"`
	GroupID     string   `json:"group_id,omitempty"`
	GroupName   string   `json:"group_name,omitempty"`
	CharCount   int      `json:"char_count,omitempty"`
}
