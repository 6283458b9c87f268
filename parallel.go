package gribwx

import (
	"context"
	"fmt"
	"runtime"

	"github.com/windward/gribwx/internal"
)

// ParseMessages parses multiple GRIB2 messages from a byte slice in parallel.
//
// The boundary scan is sequential (it is a cheap linear walk); the message
// parses then fan out over internal.RunTasks. Messages come back in their
// original file order regardless of which worker parsed them.
//
// Returns the parsed messages, or the first parse error — one corrupt
// message aborts the batch.
func ParseMessages(data []byte) ([]*Message, error) {
	return ParseMessagesWithContext(context.Background(), data, runtime.NumCPU())
}

// ParseMessagesWithWorkers parses messages with a specific number of workers.
//
// If workers <= 0, defaults to runtime.NumCPU().
func ParseMessagesWithWorkers(data []byte, workers int) ([]*Message, error) {
	return ParseMessagesWithContext(context.Background(), data, workers)
}

// ParseMessagesWithContext parses messages with context support for
// cancellation. Cancellation is observed between messages; a message parse
// already in flight runs to completion.
func ParseMessagesWithContext(ctx context.Context, data []byte, workers int) ([]*Message, error) {
	boundaries, err := FindMessages(data)
	if err != nil {
		return nil, fmt.Errorf("failed to find message boundaries: %w", err)
	}
	if len(boundaries) == 0 {
		return []*Message{}, nil
	}

	// A single message needs no fan-out.
	if len(boundaries) == 1 {
		msg, err := ParseMessage(data[boundaries[0].Start : boundaries[0].Start+int(boundaries[0].Length)])
		if err != nil {
			return nil, err
		}
		return []*Message{msg}, nil
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	// Each task writes its own slot, so no lock is needed around messages.
	messages := make([]*Message, len(boundaries))
	tasks := make([]internal.Task, len(boundaries))
	for i, boundary := range boundaries {
		i, boundary := i, boundary
		tasks[i] = func() error {
			msg, err := ParseMessage(data[boundary.Start : boundary.Start+int(boundary.Length)])
			if err != nil {
				return fmt.Errorf("failed to parse message %d at offset %d: %w",
					boundary.Index, boundary.Start, err)
			}
			messages[i] = msg
			return nil
		}
	}
	if err := internal.RunTasks(ctx, workers, tasks); err != nil {
		return nil, err
	}
	return messages, nil
}

// ParseMessagesSequential parses messages one at a time without parallelism.
//
// This is useful for comparison/benchmarking or when you want deterministic
// single-threaded behavior.
func ParseMessagesSequential(data []byte) ([]*Message, error) {
	boundaries, err := FindMessages(data)
	if err != nil {
		return nil, fmt.Errorf("failed to find message boundaries: %w", err)
	}

	messages := make([]*Message, len(boundaries))
	for i, boundary := range boundaries {
		msg, err := ParseMessage(data[boundary.Start : boundary.Start+int(boundary.Length)])
		if err != nil {
			return nil, fmt.Errorf("failed to parse message %d at offset %d: %w",
				boundary.Index, boundary.Start, err)
		}
		messages[i] = msg
	}
	return messages, nil
}

// ParseMessagesSequentialSkipErrors parses messages sequentially, skipping any that fail.
//
// This is useful when a GRIB2 file contains messages with unsupported templates.
// Successfully parsed messages are returned; errors are silently skipped.
func ParseMessagesSequentialSkipErrors(data []byte) ([]*Message, error) {
	boundaries, err := FindMessages(data)
	if err != nil {
		return nil, fmt.Errorf("failed to find message boundaries: %w", err)
	}

	messages := make([]*Message, 0, len(boundaries))
	for _, boundary := range boundaries {
		msg, err := ParseMessage(data[boundary.Start : boundary.Start+int(boundary.Length)])
		if err != nil {
			continue
		}
		messages = append(messages, msg)
	}
	return messages, nil
}
