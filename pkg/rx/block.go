package rx

import "context"

// Collect subscribes to ob and blocks until the stream terminates or ctx is
// done. It returns the values seen so far plus the stream error, if any, or
// ctx.Err() when the wait was cut short.
func Collect[T any](ctx context.Context, ob Observable[T]) ([]T, error) {
	values := make(chan T)
	terminal := make(chan error, 1)

	ob.SubscribeFunc(
		func(v T) {
			select {
			case values <- v:
			case <-ctx.Done():
			}
		},
		func(err error) { terminal <- err },
		func() { terminal <- nil },
	)

	res := make([]T, 0)
	for {
		select {
		case v := <-values:
			res = append(res, v)
		case err := <-terminal:
			return res, err
		case <-ctx.Done():
			return res, ctx.Err()
		}
	}
}

// First drains ob until its terminal notification or ctx expiry, then
// returns the first value seen, or defaultV if the stream errored,
// completed empty or timed out.
func First[T any](ctx context.Context, ob Observable[T], defaultV T) T {
	values, err := Collect(ctx, ob)
	if err != nil || len(values) == 0 {
		return defaultV
	}
	return values[0]
}
