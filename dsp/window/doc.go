// Package window provides window functions and windowing nodes for real and
// complex frames.
//
// Coefficients are generated once at construction, in symmetric form by
// default or periodic form with [WithPeriodic], and applied elementwise on
// every call. Cosine-sum, Kaiser, Tukey, Gauss and Lanczos windows are
// evaluated directly; Bartlett-Hann comes from gonum's dsp/window.
package window
