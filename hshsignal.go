// Package hshsignal defines the vocabulary for realtime batch-processing
// filter chains.
//
// A chain is built from blocks that exchange batches: contiguous chunks of
// a sample stream, presented in stream order with no gaps or overlaps. Each
// block owns its internal state (a delay line, a phase counter, or none),
// so the output of a block depends on every batch seen since construction,
// not on the current batch alone. Concatenating all batches a block ever
// produced equals the result of running the block over the concatenated
// input, delayed by the block's declared delay, regardless of how the
// caller sliced the stream into batches.
//
// Execution is single-threaded, synchronous push: a Put call runs the
// batch through the entire downstream chain before it returns.
package hshsignal

// Sample is a value exchanged between blocks. Streams are real before the
// Hilbert transform and complex after it.
type Sample interface {
	~float64 | ~complex128
}

// Consumer accepts batches of samples.
type Consumer[T Sample] interface {
	Put(batch []T)
}

// Producer pushes batches to a single registered consumer. Calling Put on
// a producer with no consumer connected is a programmer error and panics.
type Producer[T Sample] interface {
	Connect(Consumer[T])
}

// Delayer is implemented by blocks whose output trails their input in true
// time. Delay is the number of samples, and also the length of the leading
// warm-up region that carries invalid output.
type Delayer interface {
	Delay() int
}

// SampleRater is implemented by blocks that carry the sampling rate of
// their stream as metadata.
type SampleRater interface {
	SampleRate() float64
}

// Link connects one edge of a chain. A chain source -> f -> sink is wired
// with consecutive Link calls; the compiler rejects edges whose sample
// types do not match.
func Link[T Sample](from Producer[T], to Consumer[T]) {
	from.Connect(to)
}
