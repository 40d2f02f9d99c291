package forthlet

type logging struct {
	logfn func(mess string, args ...interface{})
}

func (log *logging) withLogPrefix(prefix string) func() {
	logfn := log.logfn
	log.logfn = func(mess string, args ...interface{}) {
		logfn(prefix+mess, args...)
	}
	return func() {
		log.logfn = logfn
	}
}

func (log logging) logf(mess string, args ...interface{}) {
	if log.logfn != nil {
		log.logfn(mess, args...)
	}
}
