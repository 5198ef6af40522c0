package main

import (
	"bytes"
	"fmt"
	"log"

	"github.com/howeih/Day-67-Linked-list-mergesort/lib/linkedlist"
	"github.com/howeih/Day-67-Linked-list-mergesort/lib/primitive"
)

var values = []primitive.Value{15, 10, 5, 20, 3, 2}

func dump(header string, list *linkedlist.List, writer *bytes.Buffer) {
	fmt.Fprintln(writer, header)
	if err := list.Print(writer); err != nil {
		log.Fatalf("%+v", err)
	}
}

func main() {
	log.SetPrefix("listsort: ")

	list := linkedlist.New()
	for _, v := range values {
		list.Push(v)
	}

	writer := bytes.NewBuffer(nil)
	dump("before sort:", list, writer)

	list.Sort()
	if err := list.CheckCorruption(); err != nil {
		log.Fatalf("%+v", err)
	}

	dump("after sort:", list, writer)

	fmt.Print(writer.String())
}
