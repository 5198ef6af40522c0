package linkedlist

// MergeSort sorts the positions [start, end) split at mid.
func (l *List) MergeSort(start, mid, end int) error {
	if err := l.checkRange(start, mid, end); err != nil {
		return err
	}
	return l.mergeSort(start, mid, end)
}

func (l *List) mergeSort(start, mid, end int) error {
	if start >= mid {
		return nil
	}

	if err := l.mergeSort(start, start+(mid-start)/2, mid); err != nil {
		return err
	}
	if err := l.mergeSort(mid, mid+(end-mid)/2, end); err != nil {
		return err
	}

	return l.Merge(start, mid, end)
}

// Sort sorts the whole list in ascending order.
func (l *List) Sort() {
	if err := l.MergeSort(0, l.len/2, l.len); err != nil {
		panic(err)
	}
}
