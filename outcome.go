package pagelabel

// FailureReason classifies why a document could not be labelled.
type FailureReason string

// Failure reasons reported in a BatchReport.
const (
	FailureNone     FailureReason = ""
	FailureLoad     FailureReason = "load"
	FailureAssemble FailureReason = "assemble"
	FailureStore    FailureReason = "store"
)

// Outcome is the result of labelling a single document.
type Outcome struct {
	// Key identifies the document within its source.
	Key string

	// FileName is set once the document has been loaded.
	FileName string

	// Metadata and Body are set on success.
	Metadata *Metadata
	Body     string

	// Reason and Err are set on failure.
	Reason FailureReason
	Err    error
}

// OK reports whether the document was labelled successfully.
func (o Outcome) OK() bool {
	return o.Err == nil
}

// BatchReport collects the outcomes of a labelling run in key order.
type BatchReport struct {
	Outcomes []Outcome
}

// Len returns the number of documents processed.
func (r *BatchReport) Len() int {
	return len(r.Outcomes)
}

// Succeeded returns the outcomes that produced metadata.
func (r *BatchReport) Succeeded() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.OK() {
			out = append(out, o)
		}
	}
	return out
}

// Failed returns the outcomes that did not produce metadata.
func (r *BatchReport) Failed() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if !o.OK() {
			out = append(out, o)
		}
	}
	return out
}

// FailureCounts returns the number of failures per reason.
func (r *BatchReport) FailureCounts() map[FailureReason]int {
	counts := make(map[FailureReason]int)
	for _, o := range r.Outcomes {
		if !o.OK() {
			counts[o.Reason]++
		}
	}
	return counts
}
