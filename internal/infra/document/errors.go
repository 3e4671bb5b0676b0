package document

import "errors"

var (
	// ErrRender возвращается, когда документ не удалось сформировать
	ErrRender = errors.New("document: render failed")
)
