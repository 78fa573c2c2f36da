package constraint

import (
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/navfold/internal/folder"
)

// options holds configuration shared by the constraint constructors.
type options struct {
	folder folder.Folder
	logger *zap.Logger
}

// Option configures a constraint at construction time.
type Option func(*options)

// WithFolder sets the folding strategy invoked when content exceeds the
// budget. Default: folder.NewTruncate(). The constraint owns the folder;
// do not share one folder instance across constraints in concurrent
// ablation arms unless it is stateless (all folders in this module are).
func WithFolder(f folder.Folder) Option {
	return func(o *options) {
		if f != nil {
			o.folder = f
		}
	}
}

// WithLogger sets the logger for constraint events. Default: no-op.
// Logging never changes Apply semantics.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func newOptions(opts []Option) options {
	o := options{
		folder: folder.NewTruncate(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
