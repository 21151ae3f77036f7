package types

import "errors"

var (
	ErrNoDatasetSource = errors.New("no dataset file given. Pass --file or set it in the config file")
	ErrEmptyDataset    = errors.New("dataset has a header but no data rows")
	ErrInvalidTheme    = errors.New("theme must be \"light\" or \"dark\"")
)
