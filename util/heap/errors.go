package heap

import "github.com/pkg/errors"

var ErrEmptyContainer = errors.New("heap is empty")
