package middleware

// HTTP Request Parameter Names
const (
	// URLParamProfileID is the chi route parameter carrying the profile id
	URLParamProfileID = "profileID"

	// QueryParamProfileID is the query parameter fallback used by clients that cannot set path segments
	QueryParamProfileID = "profile_id"
)

// Log Attribute Keys
const (
	AttrKeyProfileID = "profile_id"
	AttrKeyMethod    = "method"
	AttrKeyPath      = "path"
)

// Default Values
const (
	// EmptyProfileID represents an empty or missing profile id
	EmptyProfileID = ""
)

// Log Messages
const (
	LogMsgProfileRequest = "Profile request"
)
