/*
Package runner implements the dispatch sequence that owns a doro.Pet.

A Pet is not safe for concurrent use, yet its inputs come from many places: the
terminal input pump, HTTP handlers, configuration watchers and its own timers.
The Runner serializes all of them on one goroutine. Other goroutines hand work
over with Post, Do or Send; due timers are fired by the same goroutine between
work items, so a canceled timer can never race with the code that canceled it.

# Usage

	r := runner.New(pet,
		runner.WithLogger(logger),
		runner.WithConfigStore(store),
	)

	go func() {
		if err := r.Run(ctx); err != nil {
			log.Fatal(err)
		}
	}()

	consumed, err := r.Send(ctx, domain.Press(10, 10))
*/
package runner
