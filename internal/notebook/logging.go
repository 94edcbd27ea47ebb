package notebook

import "github.com/treykane/skrib/internal/logging"

// log is the package logger; tests swap it to capture output.
var log = logging.New("notebook")
