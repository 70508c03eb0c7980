package content

// Category identifies one of the fixed blog categories. The set is closed:
// adding a category means touching labels, descriptions, and the category
// landing pages together.
type Category string

const (
	CategoryTarot  Category = "tarot"
	CategoryKaiun  Category = "kaiun"
	CategoryKoyomi Category = "koyomi"
	CategoryMoon   Category = "moon"
	CategoryGuide  Category = "guide"
)

// Categories returns all known categories in display order.
func Categories() []Category {
	return []Category{CategoryTarot, CategoryKaiun, CategoryKoyomi, CategoryMoon, CategoryGuide}
}

// Valid reports whether c is a member of the fixed category set.
func (c Category) Valid() bool {
	switch c {
	case CategoryTarot, CategoryKaiun, CategoryKoyomi, CategoryMoon, CategoryGuide:
		return true
	}
	return false
}

// CategoryLabels holds the display name for each category.
var CategoryLabels = map[Category]string{
	CategoryTarot:  "タロット",
	CategoryKaiun:  "開運",
	CategoryKoyomi: "暦・吉日",
	CategoryMoon:   "月の満ち欠け",
	CategoryGuide:  "使い方ガイド",
}

// CategoryDescriptions holds the short description shown on each category page.
var CategoryDescriptions = map[Category]string{
	CategoryTarot:  "タロットカードの意味・読み方を解説します。",
	CategoryKaiun:  "日々の運気を整える習慣や開運アクションを紹介します。",
	CategoryKoyomi: "吉日・凶日など暦情報をわかりやすく解説します。",
	CategoryMoon:   "新月・満月の過ごし方や月のリズム活用法を紹介します。",
	CategoryGuide:  "アプリの使い方や活用のコツをまとめます。",
}

// Post is one published article parsed from a markdown file.
// Posts are immutable once parsed; content changes ship as new files.
type Post struct {
	Title       string
	Description string
	Date        string // publication date, YYYY-MM-DD
	Updated     string // last revision date, YYYY-MM-DD
	Category    Category
	Tags        []string
	Image       string // optional cover image path
	Slug        string
	Body        string // raw markdown, front matter stripped
	SourceFile  string // originating file name, for error reporting
	Link        string
}

// Heading is a navigable anchor derived from a post body.
type Heading struct {
	ID    string
	Level int // 2 or 3
	Text  string
}

// PageSize is the number of posts per blog index page.
const PageSize = 12

// Page is a paginated window over an ordered post list.
type Page struct {
	Posts      []Post
	Number     int // 1-based, always within [1, TotalPages]
	TotalPages int
	TotalItems int
}
