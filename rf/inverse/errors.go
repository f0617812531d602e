package inverse

import "errors"

// ErrInconsistentMeasurement reports delay/reflection data that imply a
// negative radicand or a negative quality factor.
var ErrInconsistentMeasurement = errors.New("inverse: inconsistent measurement")
