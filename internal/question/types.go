package question

// Record is a single multiple-choice question as stored in a pool.
type Record struct {
	ID          string   `json:"id" yaml:"id"`
	Domain      string   `json:"domain,omitempty" yaml:"domain,omitempty"`
	Multi       bool     `json:"multi" yaml:"multi"`
	Question    string   `json:"question" yaml:"question"`
	Options     []string `json:"options" yaml:"options"`
	Answers     []int    `json:"answers" yaml:"answers"`
	Explanation string   `json:"explanation,omitempty" yaml:"explanation,omitempty"`
}

// Clone returns a deep copy of the record.
func (r Record) Clone() Record {
	clone := r
	if r.Options != nil {
		clone.Options = append([]string(nil), r.Options...)
	}
	if r.Answers != nil {
		clone.Answers = append([]int(nil), r.Answers...)
	}
	return clone
}

// Pool is the full set of questions available to a session.
type Pool []Record

// Clone deep-copies every record in the pool.
func (p Pool) Clone() Pool {
	if p == nil {
		return nil
	}
	out := make(Pool, len(p))
	for i, record := range p {
		out[i] = record.Clone()
	}
	return out
}

// Domains lists the distinct domains in pool order.
func (p Pool) Domains() []string {
	seen := map[string]struct{}{}
	var domains []string
	for _, record := range p {
		if record.Domain == "" {
			continue
		}
		if _, ok := seen[record.Domain]; ok {
			continue
		}
		seen[record.Domain] = struct{}{}
		domains = append(domains, record.Domain)
	}
	return domains
}

// document is the versioned on-disk form of a pool.
type document struct {
	Version   int         `json:"version" yaml:"version"`
	Questions []recordDoc `json:"questions" yaml:"questions"`
}

// recordDoc is the wire form of a Record; "answer" is accepted as a legacy key.
type recordDoc struct {
	ID          string   `json:"id" yaml:"id"`
	Domain      string   `json:"domain" yaml:"domain"`
	Multi       bool     `json:"multi" yaml:"multi"`
	Question    string   `json:"question" yaml:"question"`
	Options     []string `json:"options" yaml:"options"`
	Answers     []int    `json:"answers" yaml:"answers"`
	Answer      []int    `json:"answer" yaml:"answer"`
	Explanation string   `json:"explanation" yaml:"explanation"`
}

func (doc recordDoc) record() Record {
	answers := doc.Answers
	if len(answers) == 0 {
		answers = doc.Answer
	}
	return Record{
		ID:          doc.ID,
		Domain:      doc.Domain,
		Multi:       doc.Multi,
		Question:    doc.Question,
		Options:     doc.Options,
		Answers:     answers,
		Explanation: doc.Explanation,
	}
}
