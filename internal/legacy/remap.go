package legacy

// legacyFieldNames maps field identifiers written by the pre-release save
// code to the identifiers the release build uses for the same concept. The
// table is consulted once per object key during decode; unlisted names pass
// through unchanged.
var legacyFieldNames = map[string]string{
	"jewelleryon":   "jewlon",
	"jewellerylist": "jewllist",
	"emaillist":     "emailreadlist",
}

func currentFieldName(name string) string {
	if mapped, ok := legacyFieldNames[name]; ok {
		return mapped
	}
	return name
}
