package query

// Release fields.
const (
	ReleaseID                 Release = "id"
	ReleaseTitle              Release = "title"
	ReleaseAltTitle           Release = "alttitle"
	ReleaseLanguagesLang      Release = "languages.lang"
	ReleaseLanguagesTitle     Release = "languages.title"
	ReleaseLanguagesLatin     Release = "languages.latin"
	ReleaseLanguagesMTL       Release = "languages.mtl"
	ReleaseLanguagesMain      Release = "languages.main"
	ReleasePlatforms          Release = "platforms"
	ReleaseMediaMedium        Release = "media.medium"
	ReleaseMediaQty           Release = "media.qty"
	ReleaseVNsRType           Release = "vns.rtype"
	ReleaseVNsID              Release = "vns.id"
	ReleaseVNsTitle           Release = "vns.title"
	ReleaseProducersDeveloper Release = "producers.developer"
	ReleaseProducersPublisher Release = "producers.publisher"
	ReleaseProducersID        Release = "producers.id"
	ReleaseProducersName      Release = "producers.name"
	ReleaseProducersOriginal  Release = "producers.original"
	ReleaseProducersAliases   Release = "producers.aliases"
	ReleaseProducersLang      Release = "producers.lang"
	ReleaseProducersType      Release = "producers.type"
	ReleaseProducersDesc      Release = "producers.description"
	ReleaseReleased           Release = "released"
	ReleaseMinAge             Release = "minage"
	ReleasePatch              Release = "patch"
	ReleaseFreeware           Release = "freeware"
	ReleaseUncensored         Release = "uncensored"
	ReleaseOfficial           Release = "official"
	ReleaseHasEro             Release = "has_ero"
	ReleaseResolution         Release = "resolution"
	ReleaseEngine             Release = "engine"
	ReleaseVoiced             Release = "voiced"
	ReleaseNotes              Release = "notes"
	ReleaseGTIN               Release = "gtin"
	ReleaseCatalog            Release = "catalog"
	ReleaseExtLinksURL        Release = "extlinks.url"
	ReleaseExtLinksLabel      Release = "extlinks.label"
	ReleaseExtLinksName       Release = "extlinks.name"
	ReleaseExtLinksID         Release = "extlinks.id"
)

var releaseFields = []Release{
	ReleaseID,
	ReleaseTitle,
	ReleaseAltTitle,
	ReleaseLanguagesLang,
	ReleaseLanguagesTitle,
	ReleaseLanguagesLatin,
	ReleaseLanguagesMTL,
	ReleaseLanguagesMain,
	ReleasePlatforms,
	ReleaseMediaMedium,
	ReleaseMediaQty,
	ReleaseVNsRType,
	ReleaseVNsID,
	ReleaseVNsTitle,
	ReleaseProducersDeveloper,
	ReleaseProducersPublisher,
	ReleaseProducersID,
	ReleaseProducersName,
	ReleaseProducersOriginal,
	ReleaseProducersAliases,
	ReleaseProducersLang,
	ReleaseProducersType,
	ReleaseProducersDesc,
	ReleaseReleased,
	ReleaseMinAge,
	ReleasePatch,
	ReleaseFreeware,
	ReleaseUncensored,
	ReleaseOfficial,
	ReleaseHasEro,
	ReleaseResolution,
	ReleaseEngine,
	ReleaseVoiced,
	ReleaseNotes,
	ReleaseGTIN,
	ReleaseCatalog,
	ReleaseExtLinksURL,
	ReleaseExtLinksLabel,
	ReleaseExtLinksName,
	ReleaseExtLinksID,
}

func (Release) fieldPaths() []string { return paths(releaseFields) }
