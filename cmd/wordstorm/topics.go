package wordstorm

import (
	"embed"
	"io/fs"
)

//go:embed topics/*.md
var topicFiles embed.FS

// helpTopics returns the embedded help topics rooted at the topics dir
func helpTopics() fs.FS {
	sub, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		panic(err)
	}
	return sub
}
