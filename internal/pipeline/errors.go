package pipeline

import "errors"

// errNoCorpus is returned by steps that run before anything was loaded.
var errNoCorpus = errors.New("no documents loaded: add a load step first")
