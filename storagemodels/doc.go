/*
Package storagemodels defines the data structures shared by gate implementations.

Key Types:

PageSizeConfig:
Normalizes requested page sizes:

	cfg := PageSizeConfig{Default: 10, Max: 500}
	cfg.Clamp(0)    // 10
	cfg.Clamp(1000) // 500

StreamResult:
Results from streaming operations with metadata:

	type StreamResult[T any] struct {
	    Item  T          // The streamed item
	    Error error      // Set on the final result when the stream stopped early
	    Meta  StreamMeta // Metadata about this item
	}

StreamOptions:
Configuration for streaming behavior:

	opts := []StreamOption{
	    WithBufferSize(100),
	    WithPageSize(25),
	    WithProgressHandler(progressFunc),
	}
*/
package storagemodels
