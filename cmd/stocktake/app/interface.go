package app

import (
	"github.com/stocktake/stocktake/cmd/stocktake/cmd"
)

// Ensure App implements cmd.Runtime at compile time.
var _ cmd.Runtime = (*App)(nil)
