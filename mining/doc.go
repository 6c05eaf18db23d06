// Package mining wraps gspan's pattern miner with result aggregation and
// output encoding: support/size gating (defensive, idempotent with the
// miner's own checks), batch/stream/channel emission, and text/JSON
// rendering.
package mining
