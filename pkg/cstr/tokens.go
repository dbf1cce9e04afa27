package cstr

// HTTP header names.
const (
	HeaderAuthorization   Literal = "Authorization"
	HeaderContentLength   Literal = "Content-Length"
	HeaderContentType     Literal = "Content-Type"
	HeaderAccept          Literal = "Accept"
	HeaderUserAgent       Literal = "User-Agent"
	HeaderXMSDate         Literal = "x-ms-date"
	HeaderXMSVersion      Literal = "x-ms-version"
	HeaderXMSClientReqID  Literal = "x-ms-client-request-id"
	HeaderRetryAfter      Literal = "Retry-After"
	HeaderContentEncoding Literal = "Content-Encoding"
)

// HTTP methods.
const (
	MethodGet    Literal = "GET"
	MethodHead   Literal = "HEAD"
	MethodPost   Literal = "POST"
	MethodPut    Literal = "PUT"
	MethodPatch  Literal = "PATCH"
	MethodDelete Literal = "DELETE"
)

// Wire tokens.
const (
	CRLF            Literal = "\r\n"
	SchemeHTTPS     Literal = "https://"
	BearerPrefix    Literal = "Bearer "
	ContentTypeJSON Literal = "application/json"
	JSONTrue        Literal = "true"
	JSONFalse       Literal = "false"
	JSONNull        Literal = "null"
)
