package retry

import "errors"

// ErrAborted is joined into the returned error when the context ends during a backoff sleep.
var ErrAborted = errors.New("retry: aborted during backoff")
