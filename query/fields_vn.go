package query

// Visual novel fields.
const (
	VNID                      VN = "id"
	VNTitle                   VN = "title"
	VNAltTitle                VN = "alttitle"
	VNTitlesLang              VN = "titles.lang"
	VNTitlesTitle             VN = "titles.title"
	VNTitlesLatin             VN = "titles.latin"
	VNTitlesOfficial          VN = "titles.official"
	VNTitlesMain              VN = "titles.main"
	VNAliases                 VN = "aliases"
	VNOLang                   VN = "olang"
	VNDevStatus               VN = "devstatus"
	VNReleased                VN = "released"
	VNLanguages               VN = "languages"
	VNPlatforms               VN = "platforms"
	VNImageID                 VN = "image.id"
	VNImageURL                VN = "image.url"
	VNImageDims               VN = "image.dims"
	VNImageSexual             VN = "image.sexual"
	VNImageViolence           VN = "image.violence"
	VNImageVoteCount          VN = "image.votecount"
	VNImageThumbnail          VN = "image.thumbnail"
	VNImageThumbnailDims      VN = "image.thumbnail_dims"
	VNLength                  VN = "length"
	VNLengthMinutes           VN = "length_minutes"
	VNLengthVotes             VN = "length_votes"
	VNDescription             VN = "description"
	VNAverage                 VN = "average"
	VNRating                  VN = "rating"
	VNVoteCount               VN = "votecount"
	VNScreenshotsID           VN = "screenshots.id"
	VNScreenshotsURL          VN = "screenshots.url"
	VNScreenshotsDims         VN = "screenshots.dims"
	VNScreenshotsSexual       VN = "screenshots.sexual"
	VNScreenshotsViolence     VN = "screenshots.violence"
	VNScreenshotsVoteCount    VN = "screenshots.votecount"
	VNScreenshotsThumbnail    VN = "screenshots.thumbnail"
	VNScreenshotsThumbDims    VN = "screenshots.thumbnail_dims"
	VNScreenshotsReleaseID    VN = "screenshots.release.id"
	VNScreenshotsReleaseTitle VN = "screenshots.release.title"
	VNRelationsRelation       VN = "relations.relation"
	VNRelationsOfficial       VN = "relations.relation_official"
	VNRelationsID             VN = "relations.id"
	VNRelationsTitle          VN = "relations.title"
	VNTagsRating              VN = "tags.rating"
	VNTagsSpoiler             VN = "tags.spoiler"
	VNTagsLie                 VN = "tags.lie"
	VNTagsID                  VN = "tags.id"
	VNTagsName                VN = "tags.name"
	VNTagsAliases             VN = "tags.aliases"
	VNTagsDescription         VN = "tags.description"
	VNTagsCategory            VN = "tags.category"
	VNTagsSearchable          VN = "tags.searchable"
	VNTagsApplicable          VN = "tags.applicable"
	VNDevelopersID            VN = "developers.id"
	VNDevelopersName          VN = "developers.name"
	VNDevelopersOriginal      VN = "developers.original"
	VNDevelopersAliases       VN = "developers.aliases"
	VNDevelopersLang          VN = "developers.lang"
	VNDevelopersType          VN = "developers.type"
	VNDevelopersDescription   VN = "developers.description"
	VNEditionsEID             VN = "editions.eid"
	VNEditionsLang            VN = "editions.lang"
	VNEditionsName            VN = "editions.name"
	VNEditionsOfficial        VN = "editions.official"
	VNStaffEID                VN = "staff.eid"
	VNStaffRole               VN = "staff.role"
	VNStaffNote               VN = "staff.note"
	VNStaffID                 VN = "staff.id"
	VNStaffAID                VN = "staff.aid"
	VNStaffIsMain             VN = "staff.ismain"
	VNStaffName               VN = "staff.name"
	VNStaffLang               VN = "staff.lang"
	VNStaffGender             VN = "staff.gender"
	VNStaffDescription        VN = "staff.description"
	VNStaffAliasesAID         VN = "staff.aliases.aid"
	VNStaffAliasesName        VN = "staff.aliases.name"
	VNStaffAliasesLatin       VN = "staff.aliases.latin"
	VNStaffAliasesIsMain      VN = "staff.aliases.ismain"
	VNVANote                  VN = "va.note"
	VNVAStaffID               VN = "va.staff.id"
	VNVAStaffAID              VN = "va.staff.aid"
	VNVAStaffIsMain           VN = "va.staff.ismain"
	VNVAStaffName             VN = "va.staff.name"
	VNVAStaffLang             VN = "va.staff.lang"
	VNVAStaffGender           VN = "va.staff.gender"
	VNVAStaffDescription      VN = "va.staff.description"
	VNVACharacterID           VN = "va.character.id"
	VNVACharacterName         VN = "va.character.name"
	VNVAStaffExtLinksURL      VN = "va.staff.extlinks.url"
	VNVAStaffExtLinksLabel    VN = "va.staff.extlinks.label"
	VNVAStaffExtLinksName     VN = "va.staff.extlinks.name"
	VNVAStaffExtLinksID       VN = "va.staff.extlinks.id"
	VNVAStaffAliasesAID       VN = "va.staff.aliases.aid"
	VNVAStaffAliasesName      VN = "va.staff.aliases.name"
	VNVAStaffAliasesLatin     VN = "va.staff.aliases.latin"
	VNVAStaffAliasesIsMain    VN = "va.staff.aliases.ismain"
	VNExtLinksURL             VN = "extlinks.url"
	VNExtLinksLabel           VN = "extlinks.label"
	VNExtLinksName            VN = "extlinks.name"
	VNExtLinksID              VN = "extlinks.id"
)

var vnFields = []VN{
	VNID,
	VNTitle,
	VNAltTitle,
	VNTitlesLang,
	VNTitlesTitle,
	VNTitlesLatin,
	VNTitlesOfficial,
	VNTitlesMain,
	VNAliases,
	VNOLang,
	VNDevStatus,
	VNReleased,
	VNLanguages,
	VNPlatforms,
	VNImageID,
	VNImageURL,
	VNImageDims,
	VNImageSexual,
	VNImageViolence,
	VNImageVoteCount,
	VNImageThumbnail,
	VNImageThumbnailDims,
	VNLength,
	VNLengthMinutes,
	VNLengthVotes,
	VNDescription,
	VNAverage,
	VNRating,
	VNVoteCount,
	VNScreenshotsID,
	VNScreenshotsURL,
	VNScreenshotsDims,
	VNScreenshotsSexual,
	VNScreenshotsViolence,
	VNScreenshotsVoteCount,
	VNScreenshotsThumbnail,
	VNScreenshotsThumbDims,
	VNScreenshotsReleaseID,
	VNScreenshotsReleaseTitle,
	VNRelationsRelation,
	VNRelationsOfficial,
	VNRelationsID,
	VNRelationsTitle,
	VNTagsRating,
	VNTagsSpoiler,
	VNTagsLie,
	VNTagsID,
	VNTagsName,
	VNTagsAliases,
	VNTagsDescription,
	VNTagsCategory,
	VNTagsSearchable,
	VNTagsApplicable,
	VNDevelopersID,
	VNDevelopersName,
	VNDevelopersOriginal,
	VNDevelopersAliases,
	VNDevelopersLang,
	VNDevelopersType,
	VNDevelopersDescription,
	VNEditionsEID,
	VNEditionsLang,
	VNEditionsName,
	VNEditionsOfficial,
	VNStaffEID,
	VNStaffRole,
	VNStaffNote,
	VNStaffID,
	VNStaffAID,
	VNStaffIsMain,
	VNStaffName,
	VNStaffLang,
	VNStaffGender,
	VNStaffDescription,
	VNStaffAliasesAID,
	VNStaffAliasesName,
	VNStaffAliasesLatin,
	VNStaffAliasesIsMain,
	VNVANote,
	VNVAStaffID,
	VNVAStaffAID,
	VNVAStaffIsMain,
	VNVAStaffName,
	VNVAStaffLang,
	VNVAStaffGender,
	VNVAStaffDescription,
	VNVACharacterID,
	VNVACharacterName,
	VNVAStaffExtLinksURL,
	VNVAStaffExtLinksLabel,
	VNVAStaffExtLinksName,
	VNVAStaffExtLinksID,
	VNVAStaffAliasesAID,
	VNVAStaffAliasesName,
	VNVAStaffAliasesLatin,
	VNVAStaffAliasesIsMain,
	VNExtLinksURL,
	VNExtLinksLabel,
	VNExtLinksName,
	VNExtLinksID,
}

func (VN) fieldPaths() []string { return paths(vnFields) }
