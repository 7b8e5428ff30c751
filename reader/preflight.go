package reader

import (
	"fmt"
	"io"
	"sync"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	pdfmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// pageSize is the width and height of a page in points
type pageSize struct {
	Width  float64
	Height float64
}

// US Letter, used for pages without a usable media box
var defaultPageSize = pageSize{Width: 612, Height: 792}

// pdfcpu keeps a configuration directory with fonts unless told otherwise
var disableConfigDir sync.Once

// preflight validates the file structure and returns the size of every page.
// Validation is relaxed so that the common defects of real-world generators
// do not reject otherwise readable files.
func preflight(rs io.ReadSeeker) ([]pageSize, error) {
	disableConfigDir.Do(api.DisableConfigDir)

	conf := pdfmodel.NewDefaultConfiguration()
	conf.ValidationMode = pdfmodel.ValidationRelaxed

	ctx, err := api.ReadValidateAndOptimize(rs, conf)
	if err != nil {
		return nil, fmt.Errorf("pdfcpu read: %w", err)
	}

	dims, err := ctx.PageDims()
	if err != nil {
		return nil, fmt.Errorf("page dimensions: %w", err)
	}

	sizes := make([]pageSize, ctx.PageCount)
	for i := range sizes {
		sizes[i] = defaultPageSize
		if i < len(dims) && dims[i].Width > 0 && dims[i].Height > 0 {
			sizes[i] = pageSize{Width: dims[i].Width, Height: dims[i].Height}
		}
	}
	return sizes, nil
}
