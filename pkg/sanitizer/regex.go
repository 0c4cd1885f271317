package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	// Whitespace normalization
	whitespaceRegex = regexp.MustCompile(`\s+`)

	// Script and style blocks, contents included
	scriptBlockRegex = regexp.MustCompile(`(?is)<script[^>]*?>.*?</script>`)
	styleBlockRegex  = regexp.MustCompile(`(?is)<style[^>]*?>.*?</style>`)

	// Tags that open with a letter, slash, bang or question mark
	markupTagRegex = regexp.MustCompile(`(?is)<[a-z/!?][^>]*>`)

	// Anything tag-like, including a trailing unclosed tag
	looseTagRegex = regexp.MustCompile(`(?s)<[^\s>][^>]*(?:>|$)`)

	// {WIDGET_...} and {LNG_...} template placeholders
	placeholderRegex = regexp.MustCompile(`\{(?:WIDGET|LNG)_[\p{L}\p{M}\p{N}_\s\p{Z}.\-'(),%/:&#;]+\}`)

	// [code]...[/code], [ex]...[/ex] and a bare [ex...]
	codeBlockRegex = regexp.MustCompile(`(?i)\[code(?:.+)?\]|\[/code\]|\[ex(?:.+)?\]`)

	// Opening BBCode tag with optional attributes
	bbOpenTagRegex = regexp.MustCompile(`(?i)\[([a-z]+)(?:[\s=][^\]]*)?\]`)

	// Embedded <?...?> code blocks
	embeddedCodeRegex = regexp.MustCompile(`(?s)<\?.*?\?>`)

	// Runs of characters that a description or keyword list flattens to a space
	// (\p{Z} covers NBSP and the other Unicode spaces)
	descriptionNoiseRegex = regexp.MustCompile(`(?i)(?:&rdquo;|&quot;|&nbsp;|&amp;|[\r\n\s\p{Z}\t"'])+`)
	keywordNoiseRegex     = regexp.MustCompile(`[\r\n\s\p{Z}\t"'<>]+`)

	// URL cleaning
	unsafeSchemeRegex   = regexp.MustCompile(`(?i)^(?:javascript|vbscript|data):`)
	urlTabNewlineRegex  = regexp.MustCompile(`[\t\r\n]+`)
	urlLeadingCtrlRegex = regexp.MustCompile(`^[\x00-\x20]+`)
	urlNoiseRegex       = regexp.MustCompile("[()'\"`]+")
	reEscapedRegex      = regexp.MustCompile(`(?i)&amp;(#?[a-z0-9]+);`)

	// Characters allowed in e-mail addresses and phone numbers
	nonUsernameRegex = regexp.MustCompile(`[^a-zA-Z0-9@._+\-]+`)
)
