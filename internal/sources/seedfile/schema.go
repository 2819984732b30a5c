package seedfile

// Entry is one bookmark in the seed file.
type Entry struct {
	Title string `yaml:"title"`
	URL   string `yaml:"url"`
}

// Config maps a category name to its bookmarks.
type Config map[string][]Entry
