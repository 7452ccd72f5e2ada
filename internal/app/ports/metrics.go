package ports

type TurnMetrics interface {
	RecordSuccess(resultCode string)
	RecordConflict()
	RecordFailure()
}
