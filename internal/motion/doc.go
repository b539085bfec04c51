// Package motion describes the page's animations and models their lifecycle.
//
// The descriptors (Tween, Reveal, Config) are serialized into the page and
// interpreted in the browser by a thin shim over GSAP and ScrollTrigger. The
// same descriptors drive the headless models used on the server side: Tracker
// reproduces the one-shot scroll reveal, and Scope runs perpetual loops as
// cancellable tasks that are torn down together.
package motion
