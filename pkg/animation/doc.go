// Package animation drives decoration transitions.
//
//   - [AnimationController] moves a value from 0 to 1 over a duration,
//     shaped by a [Curve].
//   - [Tween] maps that value onto any type with a lerp function.
//     [TweenDecoration], [TweenShapeDecoration] and [TweenShapeBorder] use
//     the interpolation rules of the decoration and borders packages.
//   - Controllers are advanced by [StepTickers] against the package
//     [Clock]. [Frames] steps a [ManualClock] to sample an animation at
//     evenly spaced frames, which is how offline renders are produced.
package animation
