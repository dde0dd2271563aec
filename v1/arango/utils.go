package arango

// Logging helpers tolerating an unset logger.

func (s *Store) logDebug(msg string, err error, fields map[string]interface{}) {
	if s == nil || s.logger == nil {
		return
	}
	if fields == nil {
		s.logger.Debug(msg, err)
		return
	}
	s.logger.Debug(msg, err, fields)
}

func (s *Store) logWarn(msg string, err error, fields map[string]interface{}) {
	if s == nil || s.logger == nil {
		return
	}
	if fields == nil {
		s.logger.Warn(msg, err)
		return
	}
	s.logger.Warn(msg, err, fields)
}
