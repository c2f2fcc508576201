package view

import (
	"strings"

	"github.com/soocke/box-annotator/ui/images"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// AskImagePath opens the file dialog in dir and returns the chosen path or "".
func AskImagePath(dir string) string {
	exts := make([]string, 0, len(images.Extensions))
	for _, e := range images.Extensions {
		exts = append(exts, e, strings.ToUpper(e))
	}
	opts := []Opt{
		Title("Open Image"),
		Filetypes([]FileType{
			{TypeName: "Images", Extensions: exts},
			{TypeName: "All files", Extensions: []string{"*"}},
		}),
	}
	if dir != "" {
		opts = append(opts, Initialdir(dir))
	}
	paths := GetOpenFile(opts...)
	if len(paths) == 0 {
		return ""
	}
	return strings.TrimSpace(paths[0])
}

// ShowInfo shows a blocking information notice.
func ShowInfo(title, msg string) {
	MessageBox(Title(title), Msg(msg), Icon("info"))
}

// ShowError shows a blocking error notice.
func ShowError(title, msg string) {
	MessageBox(Title(title), Msg(msg), Icon("error"))
}

// Confirm asks a yes/no question.
func Confirm(title, msg string) bool {
	return MessageBox(Title(title), Msg(msg), Icon("question"), Type("yesno")) == "yes"
}
