package badges

import (
	"github.com/arthur-debert/statbadges/pkg/errors"
	"github.com/beevik/etree"
)

// Validate reports whether svg parses as XML with an <svg> root element.
func Validate(svg string) error {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(svg); err != nil {
		return err
	}

	root := doc.Root()
	if root == nil {
		return errors.New(errors.ErrRenderInvalid, "document has no root element")
	}
	if root.Tag != "svg" {
		return errors.Newf(errors.ErrRenderInvalid, "root element is <%s>, want <svg>", root.Tag)
	}
	return nil
}
