package usecase

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"

	"github.com/commitscope/commitscope/internal/domain"
	"github.com/commitscope/commitscope/internal/repository"
	"github.com/spf13/afero"
)

// ScanContentUseCase rejects invisible or otherwise forbidden Unicode in
// the files about to be committed, and in their names. Invisible
// characters in committed content are a deception vector: they render as
// nothing while changing what the file actually says.

type ScanContentUseCase struct {
	Fs repository.FileSystemRepository
}

// Execute scans every resolved path. File names are always scanned;
// content only for paths present in the working tree, since deletions
// have no content, and binary files are skipped.
func (uc *ScanContentUseCase) Execute(resolutions []domain.PathResolution) error {
	var findings []domain.ContentFinding
	for _, res := range resolutions {
		findings = append(findings, scanText("path["+res.Path+"]", res.Path)...)
		if res.ExistsIn != domain.ExistsWorkingTree {
			continue
		}
		info, err := uc.Fs.Stat(res.Path)
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", res.Path, err)
		}
		if info.IsDir() {
			continue
		}
		data, err := afero.ReadFile(uc.Fs, res.Path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", res.Path, err)
		}
		if probablyBinary(data) {
			continue
		}
		findings = append(findings, scanText(res.Path, string(data))...)
	}
	if len(findings) > 0 {
		return &domain.InvisibleCharsError{Findings: findings}
	}
	return nil
}

// variationSelectors covers VS1..VS16 and the supplement VS17..VS256.
var variationSelectors = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0xFE00, Hi: 0xFE0F, Stride: 1}},
	R32: []unicode.Range32{{Lo: 0xE0100, Hi: 0xE01EF, Stride: 1}},
}

// forbiddenRune reports whether a character has no business in committed
// text: whitespace beyond space/tab/newline/CR, variation selectors,
// control/format/surrogate/private-use characters, noncharacters, and
// the combining grapheme joiner.
func forbiddenRune(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r':
		return false
	}
	if unicode.IsSpace(r) {
		return true
	}
	if unicode.Is(variationSelectors, r) {
		return true
	}
	if unicode.In(r, unicode.Cc, unicode.Cf, unicode.Cs, unicode.Co) {
		return true
	}
	if nonCharacter(r) {
		return true
	}
	return r == '͏'
}

func nonCharacter(r rune) bool {
	if r >= 0xFDD0 && r <= 0xFDEF {
		return true
	}
	low := r & 0xFFFF
	return low == 0xFFFE || low == 0xFFFF
}

func scanText(path, text string) []domain.ContentFinding {
	var findings []domain.ContentFinding
	for i, line := range strings.Split(text, "\n") {
		col := 0
		for _, r := range line {
			col++
			if !forbiddenRune(r) {
				continue
			}
			findings = append(findings, domain.ContentFinding{
				Path: path,
				Line: i + 1,
				Col:  col,
				Rune: r,
			})
		}
	}
	return findings
}

// probablyBinary applies the classic heuristics: any NUL byte, or too
// many non-text bytes in the leading sample.
func probablyBinary(data []byte) bool {
	if bytes.IndexByte(data, 0) >= 0 {
		return true
	}
	sample := data
	if len(sample) > 4096 {
		sample = sample[:4096]
	}
	if len(sample) == 0 {
		return false
	}
	nontext := 0
	for _, b := range sample {
		if b < 9 || (b > 13 && b < 32) || b == 127 {
			nontext++
		}
	}
	return float64(nontext)/float64(len(sample)) > 0.3
}
