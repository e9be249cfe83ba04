package htmlrender

// Config holds HTML rendering settings.
type Config struct {
	// Classes adds utility class attributes to every element.
	Classes bool
	// Wrapper encloses all blocks in a single div.
	Wrapper bool
}

// DefaultConfig returns a baseline configuration.
func DefaultConfig() Config {
	return Config{
		Classes: true,
		Wrapper: true,
	}
}

const (
	classWrapper     = "animate-in fade-in duration-500"
	classH2          = "text-2xl font-serif font-bold text-stone-900 mt-8 mb-4 pb-2 border-b border-stone-200"
	classH3          = "text-xl font-serif font-bold text-stone-800 mt-6 mb-3"
	classH4          = "text-lg font-serif font-semibold text-stone-800 mt-4 mb-2"
	classParagraph   = "mb-4 text-stone-700 leading-7 text-justify"
	classList        = "my-4 space-y-2 list-disc list-outside ml-5 text-stone-700"
	classListItem    = "pl-1 leading-relaxed"
	classTableScroll = "my-6 overflow-x-auto"
	classTable       = "w-full text-left border-collapse text-sm"
	classHeaderCell  = "py-3 px-4 border-t-2 border-b border-stone-900 font-serif font-bold text-stone-900 bg-stone-50"
	classRow         = "border-b border-stone-200"
	classLastRow     = "border-b-2 border-stone-900"
	classCell        = "py-3 px-4 text-stone-700 align-top leading-relaxed"
	classStrong      = "font-bold text-stone-900"
)
