package blogservice

import (
	"strings"

	"github.com/AslanEminovi/codex-blogsite/internal/common"
)

func validateTitle(v *common.Validator, title string) {
	v.Check(strings.TrimSpace(title) != "", "title", "must be provided")
	v.Check(v.CheckStringLength(title, 0, 200), "title", "must not be more than 200 characters long")
}

func validateContent(v *common.Validator, content string) {
	v.Check(strings.TrimSpace(content) != "", "content", "must be provided")
}

func validateSummary(v *common.Validator, summary string) {
	v.Check(v.CheckStringLength(summary, 0, 500), "summary", "must not be more than 500 characters long")
}

func validateBlogInput(v *common.Validator, in BlogInput) {
	validateTitle(v, in.Title)
	validateContent(v, in.Content)
	validateSummary(v, in.Summary)
}

func validateInt(v *common.Validator, num int, name string) {
	v.Check(num > 0, name, "must be greater than zero")
}
