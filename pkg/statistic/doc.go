// Package statistic places components on the abstractness/instability plane
// and summarises how far they sit from the main sequence.
//
// Each component becomes a [Point] with coordinates (I, A). Its distance from
// the main sequence, the line A + I = 1, is |I + A - 1|. [Summarize] reports
// the mean, population variance and standard deviation of those distances.
//
// Two zones of exclusion are recognised, both with closed bounds:
//
//   - Zone of pain: I <= 0.5 and A <= 0.5 (stable and concrete)
//   - Zone of uselessness: I >= 0.5 and A >= 0.5 (unstable and abstract)
//
// A point at I = A = 0.5 belongs to both.
package statistic
