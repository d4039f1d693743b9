package kvstore

import "log/slog"

// StartEmpty reports whether the next fresh boot should seed empty guest and
// reservation collections instead of the default datasets.
func StartEmpty(s Store, logger *slog.Logger) bool {
	return Load(s, logger, KeyStartEmpty, false)
}

func SetStartEmpty(s Store, enable bool) error {
	if enable {
		return Save(s, KeyStartEmpty, true)
	}
	return Clear(s, KeyStartEmpty)
}
