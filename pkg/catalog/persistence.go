package catalog

import (
	"bufio"
	"os"
	"strings"

	"github.com/stocktake/stocktake/pkg/constants"
	"github.com/stocktake/stocktake/pkg/errors"
	"github.com/stocktake/stocktake/pkg/product"
)

// Load replaces the in-memory catalog with the contents of the file at
// path and returns the number of products loaded.
//
// A missing file is not an error: the result is an empty catalog. A
// malformed line is skipped with a warning instead of aborting the whole
// load; blank lines and lines with an unknown type or too few fields are
// ignored silently, matching the decode rules.
func (s *Store) Load(path string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.products = s.products[:0]

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Info().Str("path", path).Msg("Catalog file not found, starting with empty catalog")
			return 0, nil
		}
		return 0, errors.WrapIO("read", path, err)
	}
	defer f.Close()

	var skipped int
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		p, err := product.Decode(line)
		if err != nil {
			skipped++
			s.logger.Warn().Err(err).Str("line", line).Msg("Skipping malformed catalog line")
			continue
		}
		if p == nil {
			continue
		}
		if err := s.addLocked(p); err != nil {
			skipped++
			s.logger.Warn().Err(err).Str("id", p.Common().ID).Msg("Skipping catalog line")
		}
	}
	if err := scanner.Err(); err != nil {
		// Keep whatever loaded before the failure so the caller can
		// continue with best-effort in-memory state.
		s.sortLocked()
		return len(s.products), errors.WrapIO("read", path, err)
	}

	s.sortLocked()
	s.logger.Info().
		Int("loaded", len(s.products)).
		Int("skipped", skipped).
		Str("path", path).
		Msg("Catalog loaded")
	return len(s.products), nil
}

// Save writes the whole catalog to the file at path in sorted order,
// replacing any previous contents.
func (s *Store) Save(path string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sb strings.Builder
	for _, p := range s.products {
		sb.WriteString(product.Encode(p))
		sb.WriteByte('\n')
	}

	if err := os.WriteFile(path, []byte(sb.String()), constants.FilePermissions); err != nil {
		return errors.WrapIO("write", path, err)
	}

	s.logger.Info().
		Int("count", len(s.products)).
		Str("path", path).
		Msg("Catalog saved")
	return nil
}
