package query

import (
	"fmt"
	"strings"
)

// blockContent strips the braces of a block token. A block must fit on one line.
func blockContent(text string) (string, error) {
	if len(text) < 2 || text[0] != '{' || text[len(text)-1] != '}' || strings.IndexByte(text, '\n') >= 0 {
		return "", fmt.Errorf("%w: %w", ErrUnknownSpecifier, ErrMalformedBlock)
	}
	content := text[1 : len(text)-1]
	if content == "" {
		return "", ErrEmptyConditionalBlock
	}
	return content, nil
}

// resolveBlock renders a conditional block. The block body is built over the
// driving argument followed by every argument the enclosing pass has not consumed
// yet; the enclosing pass itself only advances past the driving argument.
// The block renders empty when its own pass consumed the skip marker.
func (b *Builder) resolveBlock(tok Token, driving Value, rest []Value, offset int) (string, error) {
	content, err := blockContent(tok.Text)
	if err != nil {
		return "", fmt.Errorf("%w: %q at offset %d", err, tok.Text, offset+tok.Pos)
	}

	args := make([]Value, 0, len(rest)+1)
	args = append(args, driving)
	args = append(args, rest...)

	text, skipped, err := b.build(content, newArgFeeder(args), offset+tok.Pos+1)
	if err != nil {
		return "", err
	}
	if skipped {
		b.logger.Debug("conditional block suppressed", "offset", offset+tok.Pos, "block", tok.Text)
		return "", nil
	}
	return text, nil
}
