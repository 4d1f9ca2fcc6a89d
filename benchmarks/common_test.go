package benchmarks

import "errors"

var (
	errExample = errors.New("dial vault: bad token hunter2")

	_secret = "hunter2"
	_line   = `level=INFO msg="login ok" user=gopher token=hunter2`
)
