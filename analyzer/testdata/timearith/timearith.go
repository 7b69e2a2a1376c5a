package timearith

import "time"

func elapsed(start time.Time) time.Duration {
	return time.Now().Sub(start) // want `time.Now\(\).Sub can be replaced with time.Since`
}

func remaining(deadline time.Time) time.Duration {
	return deadline.Sub(time.Now()) // want `Sub\(time.Now\(\)\) can be replaced with time.Until`
}

func difference(a, b time.Time) time.Duration {
	return a.Sub(b)
}

func viaVariable() time.Duration {
	now := time.Now()

	return now.Sub(time.Unix(0, 0)) // not a direct time.Now() call
}
