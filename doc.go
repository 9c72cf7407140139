// Package lc3 provides encoding and decoding for the LC3 audio codec.
//
// LC3 (Low Complexity Communication Codec) is a lossy audio codec designed
// for low-latency audio transport over constrained links. This package
// conforms to:
//   - Low Complexity Communication Codec (LC3), Bluetooth Specification v1.0
//   - ETSI TS 103 634 (LC3plus), for 2.5/5 ms frames and High-Resolution mode
//
// Unlike most codecs, LC3 is built for transports that fix both the packet
// size and the packet interval. It has no variable or adaptive bitrate mode
// and no bit reservoir: every frame is encoded strictly within the byte
// budget supplied for that frame, and the budget can change freely between
// frames without resetting the codec.
//
// The codec also does not operate on a fixed sample count. It operates on a
// fixed frame duration at any supported sample rate:
//
//	Frame duration   2.5 ms   5 ms   7.5 ms   10 ms
//	LC3                                 X        X
//	LC3plus             X       X               X
//
// Supported sample rates are 8, 16, 24, 32, 48 and 96 kHz. The 96 kHz rate
// is only available in High-Resolution mode, which extends the audio
// bandwidth up to the Nyquist frequency and uses wider per-frame byte
// budgets (see the table on Encoder.Encode).
//
// # Usage
//
// An Encoder or Decoder holds the state of one stream: samples overlapping
// across frames and, on the decoder side, the packet loss concealment
// history. Construct one context per stream, drive it one frame at a time,
// and close it exactly once:
//
//	enc, err := lc3.NewEncoder(lc3.Duration10M, 48000, 0)
//	if err != nil { ... }
//	defer enc.Close()
//
//	out := make([]byte, 100) // byte budget for this frame
//	err = enc.EncodeS16(pcm, 1, out)
//
// A context is not safe for concurrent use; distinct contexts are fully
// independent and may run on separate goroutines. No call blocks or
// performs I/O, so encode and decode are safe on real-time audio threads.
//
// The signal processing itself is performed by the liblc3 reference
// library, linked through cgo. This package owns the context lifecycle,
// parameter validation and the frame-at-a-time calling contract.
package lc3
