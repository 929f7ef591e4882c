package config

import (
	"io/fs"
	"time"
)

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// UserAgent identifies the HTTP client.
var UserAgent = "Go-AgeClock/" + Version

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName           = "Go AgeClock"
	AppID             = "com.github.tartampluch.go-ageclock"
	BinaryName        = "go-ageclock"
	LocalhostBindAddr = "127.0.0.1"
	LogFileName       = "app.log"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for sensitive files like logs.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	// Used for creating secure cache directories.
	DirPermUserRWX fs.FileMode = 0700

	// ChannelBufferSize defines the standard buffer size for internal signaling channels.
	ChannelBufferSize = 1
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagDebug     = "debug"
	FlagLang      = "lang"
	FlagBirth     = "birth"
	FlagRef       = "ref"
	FlagJSON      = "json"
	FlagVCard     = "vcard"
	FlagVCardURL  = "vcard-url"
	FlagVCardUser = "vcard-user"
	FlagVCardPass = "vcard-pass"
	FlagPort      = "port"
	FlagOutput    = "output"

	FlagDescDebug     = "Enable debug logging"
	FlagDescLang      = "Output language (en, fr)"
	FlagDescBirth     = "Birth date (YYYY-MM-DD)"
	FlagDescRef       = "Reference date (YYYY-MM-DD, defaults to today)"
	FlagDescJSON      = "Emit the snapshot as JSON instead of text"
	FlagDescVCard     = "Read the birth date from a local vCard file"
	FlagDescVCardURL  = "Fetch the birth date from a vCard URL (CardDAV/WebDAV)"
	FlagDescVCardUser = "HTTP Basic Auth username for the vCard URL"
	FlagDescVCardPass = "HTTP Basic Auth password for the vCard URL"
	FlagDescPort      = "TCP port for the HTTP server"
	FlagDescOutput    = "Write output to a file instead of stdout"

	MsgVersionOutput = "%s version %s (%s/%s)\n"
)

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	DefaultPort     = "18080"
	DefaultLanguage = "en"

	// DaysPerYear is the mean Gregorian year length used for fractional-year
	// comparisons and for converting year ETAs into day counts.
	DaysPerYear = 365.25

	// DaysPerMonth is the mean month length (DaysPerYear / 12) used by the
	// duration formatter.
	DaysPerMonth = 30.4375

	// HeartbeatsPerDay assumes an average resting rate of 80 beats per minute.
	HeartbeatsPerDay = 80 * 60 * 24

	UIDSalt = "go-ageclock-v1-" // Salt for deterministic UID generation
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

const (
	// iCal Properties
	ICalVersion = "2.0"
	ICalProdid  = "-//Go AgeClock//Engine//EN"
	ICalCalName = "Age Milestones"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "goageclock"

	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDesc       = "DESCRIPTION"
	PropDTStart    = "DTSTART"
	PropDTStamp    = "DTSTAMP"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"

	VCardBDAY = "BDAY"
	VCardFN   = "FN"
	VCardN    = "N"
)

// -----------------------------------------------------------------------------
// Data Formats, Limits & File Extensions
// -----------------------------------------------------------------------------

const (
	// Date layouts accepted for birth/reference inputs and vCard BDAY fields
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatRFC3339   = time.RFC3339
	DateFormatFullT     = "2006-01-02T15:04:05Z"

	// Limits
	MinPort = 1
	MaxPort = 65535

	// UID Generation
	UIDHashLength   = 16
	FormatHashInput = "%s|%s|%s"
	FormatUID       = "%s-%s@%s"

	// Display Formats
	FormatBirthdaySummary  = "%s turns %d"
	FormatMilestoneSummary = "%s: %s"
)

// -----------------------------------------------------------------------------
// Network & Timeouts
// -----------------------------------------------------------------------------

const (
	HTTPTimeout         = 30 * time.Second
	ShutdownTimeout     = 5 * time.Second
	ServerReadTimeout   = 10 * time.Second
	ServerWriteTimeout  = 30 * time.Second
	ServerIdleTimeout   = 60 * time.Second
	MaxHTTPResponseSize = 256 * 1024 * 1024 // 256MB
	SchemeHTTP          = "http"
	SchemeHTTPS         = "https"
	AddrSeparator       = ":"

	// Routes
	RouteAge      = "/v1/age"
	RouteCalendar = "/v1/age.ics"
	RouteHealth   = "/healthz"

	// Query Parameters
	QueryParamBirth = "birth"
	QueryParamRef   = "ref"
	QueryParamName  = "name"
)

// -----------------------------------------------------------------------------
// HTTP Headers & MIME Types
// -----------------------------------------------------------------------------

const (
	HeaderContentType  = "Content-Type"
	HeaderCacheControl = "Cache-Control"
	HeaderXContentType = "X-Content-Type-Options"
	HeaderUserAgent    = "User-Agent"

	MimeTextCalendar    = "text/calendar; charset=utf-8"
	MimeJSON            = "application/json; charset=utf-8"
	MimeNoSniff         = "nosniff"
	CacheControlPrivate = "private, no-cache"
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrInvalidDate    = "invalid calendar date"
	ErrInvalidRange   = "birth date is after the reference date"
	ErrNoBirthDate    = "no vCard with a usable birth date was found"
	ErrBirthRequired  = "a birth date is required (flag or vCard source)"
	ErrSourceConflict = "at most one birth date source may be given"
	ErrServerStartup  = "server startup failed"
	ErrServerShutdown = "server shutdown failed"
	ErrPortRequired   = "server port is required"
	ErrPortRange      = "server port must be between 1 and 65535"
	ErrInvalidURL     = "invalid URL structure"
	ErrProtocol       = "unsupported protocol scheme (http/https only)"
	ErrVCardParse     = "failed to parse vCard stream"
	ErrICalEncode     = "failed to encode iCalendar data"
	ErrLogFile        = "failed to open log file"
	ErrCacheDir       = "could not determine user cache dir"
	ErrCreateDir      = "could not create app cache dir"
	ErrAppFailed      = "application failed unexpectedly"
	ErrWriteResp      = "failed to write response body"
	ErrWriteOutput    = "failed to write output file"
	ErrLocalesAccess  = "failed to access embedded locales"
	ErrLocaleLoad     = "failed to load locale file"
)

// Error kinds surfaced in HTTP error bodies.
const (
	KindInvalidDate  = "invalid_date"
	KindInvalidRange = "invalid_range"
	KindBadRequest   = "bad_request"
)

// -----------------------------------------------------------------------------
// Fallbacks, Log Messages & Defaults
// -----------------------------------------------------------------------------

const (
	FallbackName = "Unknown"

	MsgAppStarting   = "Starting application"
	MsgAppStop       = "Application stopped gracefully"
	MsgServerListen  = "HTTP server listening"
	MsgServerStop    = "Shutting down HTTP server..."
	MsgSkippedCard   = "Skipping malformed vCard"
	MsgSkippedDate   = "Skipping invalid date format"
	MsgSnapshotDone  = "Snapshot calculated"
	MsgCalendarBuilt = "Calendar feed generated"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleBadName = "Skipping malformed locale filename"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyUnitYears      = "unit_years"
	TKeyUnitMonths     = "unit_months"
	TKeyUnitDays       = "unit_days"
	TKeyNow            = "now"
	TKeyLblAge         = "lbl_age"
	TKeyLblDays        = "lbl_days"
	TKeyLblWeeks       = "lbl_weeks"
	TKeyLblHours       = "lbl_hours"
	TKeyLblMinutes     = "lbl_minutes"
	TKeyLblSeconds     = "lbl_seconds"
	TKeyLblNextBday    = "lbl_next_birthday"
	TKeyLblMilestones  = "lbl_milestones"
	TKeyStatusReached  = "status_reached"
	TKeyStatusUpcoming = "status_upcoming"
	TKeyIn             = "lbl_in"
)

// SupportedLanguages defines the list of available output languages (ISO 639-1).
var SupportedLanguages = []string{"en", "fr"}

// SegmentSeparator joins the parts of a composite duration string.
const SegmentSeparator = " • "

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyURL       = "url"
	LogKeyStatus    = "status_code"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyPort      = "port"
	LogKeyValue     = "value"
	LogKeyName      = "name"
	LogKeyDOB       = "date_of_birth"
	LogKeyRef       = "reference_date"
	LogKeyDuration  = "duration_ms"
	LogKeyEvents    = "events"
	LogKeySizeBytes = "size_bytes"

	// Startup Info Keys
	LogKeyBuild   = "build"
	LogKeyApp     = "app"
	LogKeyVersion = "version"
	LogKeyGoVer   = "go_version"
	LogKeyEnv     = "env"
	LogKeyOS      = "os"
	LogKeyArch    = "arch"
	LogKeyPID     = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompEngine  = "engine"
	CompServer  = "server"
	CompFetcher = "fetcher"
	CompMain    = "main"
	CompI18n    = "i18n"
)
