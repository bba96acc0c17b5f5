package vndb

// VisualNovel is a record returned by the vn endpoint.
// Only the fields named in the query are filled.
type VisualNovel struct {
	ID            string       `json:"id" jsonschema:"description=VNDB id of the visual novel."`
	Title         string       `json:"title,omitempty" jsonschema:"description=Main title. Usually romanized."`
	AltTitle      string       `json:"alttitle,omitempty" jsonschema:"description=Alternative title in the original script."`
	Titles        []Title      `json:"titles,omitempty" jsonschema:"description=Every title known for the visual novel."`
	Aliases       []string     `json:"aliases,omitempty"`
	OLang         string       `json:"olang,omitempty" jsonschema:"description=Language the visual novel was originally written in."`
	DevStatus     *DevStatus   `json:"devstatus,omitempty" jsonschema:"enum=0,enum=1,enum=2"`
	Released      string       `json:"released,omitempty" jsonschema:"description=Release date. May be partial or TBA."`
	Languages     []string     `json:"languages,omitempty" jsonschema:"description=Languages the visual novel is available in. Machine translations excluded."`
	Platforms     []string     `json:"platforms,omitempty"`
	Image         *Image       `json:"image,omitempty"`
	Length        *int         `json:"length,omitempty" jsonschema:"description=Rough length estimate from 1 (very short) to 5 (very long)."`
	LengthMinutes *int         `json:"length_minutes,omitempty" jsonschema:"description=Average of user submitted play times in minutes."`
	LengthVotes   int          `json:"length_votes,omitempty"`
	Description   string       `json:"description,omitempty" jsonschema:"description=Description. May contain formatting codes."`
	Average       *float64     `json:"average,omitempty" jsonschema:"description=Raw vote average from 10 to 100."`
	Rating        *float64     `json:"rating,omitempty" jsonschema:"description=Bayesian rating from 10 to 100."`
	VoteCount     int          `json:"votecount,omitempty"`
	Screenshots   []Screenshot `json:"screenshots,omitempty"`
	Relations     []VNRelation `json:"relations,omitempty" jsonschema:"description=Visual novels directly related to this one."`
	Tags          []VNTag      `json:"tags,omitempty"`
	Developers    []Producer   `json:"developers,omitempty" jsonschema:"description=Producers with a developer role on a linked release."`
	Editions      []Edition    `json:"editions,omitempty"`
	Staff         []VNStaff    `json:"staff,omitempty"`
	VA            []VoiceActor `json:"va,omitempty" jsonschema:"description=Voice actors. A person or character may appear more than once."`
	ExtLinks      []ExtLink    `json:"extlinks,omitempty"`
}

// DevStatus is the development state of a visual novel.
type DevStatus int

const (
	DevFinished DevStatus = iota
	DevInProgress
	DevCancelled
)

func (s DevStatus) String() string {
	switch s {
	case DevFinished:
		return "finished"
	case DevInProgress:
		return "in development"
	case DevCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Title is one of the titles of a visual novel.
type Title struct {
	Lang     string `json:"lang" jsonschema:"description=Language of this title."`
	Title    string `json:"title" jsonschema:"description=Title in the original script."`
	Latin    string `json:"latin,omitempty" jsonschema:"description=Romanized form of the title."`
	Official bool   `json:"official"`
	Main     bool   `json:"main" jsonschema:"description=Whether this is the main title of the entry."`
}

// Image describes a cover or character image.
type Image struct {
	ID            string   `json:"id,omitempty"`
	URL           string   `json:"url,omitempty"`
	Dims          []int    `json:"dims,omitempty" jsonschema:"description=Width and height in pixels."`
	Sexual        *float64 `json:"sexual,omitempty" jsonschema:"description=Average sexual content flag vote from 0 to 2."`
	Violence      *float64 `json:"violence,omitempty" jsonschema:"description=Average violence flag vote from 0 to 2."`
	VoteCount     int      `json:"votecount,omitempty"`
	Thumbnail     string   `json:"thumbnail,omitempty"`
	ThumbnailDims []int    `json:"thumbnail_dims,omitempty"`
}

// Screenshot is an image with the release it was taken from.
type Screenshot struct {
	Image
	Release *Release `json:"release,omitempty"`
}

// VNRelation is a visual novel related to another one.
type VNRelation struct {
	Relation         string `json:"relation,omitempty" jsonschema:"description=Relation type such as seq or preq."`
	RelationOfficial bool   `json:"relation_official,omitempty"`
	VisualNovel
}

// VNTag is a tag applied to a visual novel.
type VNTag struct {
	Rating  float64 `json:"rating,omitempty" jsonschema:"description=Tag rating between 0 (exclusive) and 3."`
	Spoiler int     `json:"spoiler,omitempty" jsonschema:"description=Spoiler level from 0 to 2."`
	Lie     bool    `json:"lie,omitempty"`
	Tag
}

// Edition is an edition of a visual novel. The id is local to the entry.
type Edition struct {
	EID      int    `json:"eid"`
	Lang     string `json:"lang,omitempty"`
	Name     string `json:"name"`
	Official bool   `json:"official"`
}

// VNStaff is a staff member credited on a visual novel.
type VNStaff struct {
	EID  *int   `json:"eid,omitempty" jsonschema:"description=Edition id. Absent for the original edition."`
	Role string `json:"role,omitempty"`
	Note string `json:"note,omitempty"`
	Staff
}

// VoiceActor links a staff member to the character they voiced.
type VoiceActor struct {
	Note      string     `json:"note,omitempty"`
	Staff     *Staff     `json:"staff,omitempty"`
	Character *Character `json:"character,omitempty"`
}
