package main

import (
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"

	"github.com/hyperryzen/Ochered/utils/collections"
)

type demo struct {
	w        io.Writer
	log      *log.Entry
	capacity int
}

func runDemo(w io.Writer, logger *log.Entry, capacity int) error {
	d := &demo{
		w:        w,
		log:      logger,
		capacity: capacity,
	}
	sections := []struct {
		title string
		run   func() error
	}{
		{"RingBufferQueue", d.ringBufferQueue},
		{"LinkedQueue", d.linkedQueue},
		{"Errors", d.emptyErrors},
		{"Contains", d.contains},
	}
	for i, s := range sections {
		if i > 0 {
			d.println()
		}
		d.println("===", s.title, "===")
		d.log.Debug("section started ", s.title)
		if err := s.run(); err != nil {
			return fmt.Errorf("%s: %w", s.title, err)
		}
	}
	return nil
}

func (d *demo) println(a ...interface{}) {
	_, _ = fmt.Fprintln(d.w, a...)
}

func (d *demo) ringBufferQueue() error {
	q, err := collections.NewRingBufferQueueWithCapacity[int](d.capacity)
	if err != nil {
		return err
	}
	var queue collections.Queue[int] = q
	d.println("Enqueue: 10, 20, 30, 40, 50")
	for _, v := range []int{10, 20, 30, 40, 50} {
		queue.Enqueue(v)
	}
	d.log.Debug("capacity after enqueue ", q.Capacity())
	if err := describe(d, queue); err != nil {
		return err
	}
	d.println()
	d.println("Dequeue:")
	for !queue.IsEmpty() {
		v, err := queue.Dequeue()
		if err != nil {
			return err
		}
		d.println("Dequeued:", v)
		d.println("Current", queue)
	}
	return nil
}

func (d *demo) linkedQueue() error {
	var queue collections.Queue[string] = collections.NewLinkedQueue[string]()
	d.println("Enqueue strings")
	for _, v := range []string{"First", "Second", "Third", "Fourth"} {
		queue.Enqueue(v)
	}
	if err := describe(d, queue); err != nil {
		return err
	}
	d.println()
	d.println("Dequeue 2 elements:")
	for i := 0; i < 2; i++ {
		v, err := queue.Dequeue()
		if err != nil {
			return err
		}
		d.println("Dequeued:", v)
	}
	d.println("Current", queue)
	d.println()
	d.println("Enqueue new elements:")
	queue.Enqueue("Fifth")
	queue.Enqueue("Sixth")
	d.println(queue)
	queue.Clear()
	d.println()
	d.println("After clear:")
	d.println("Empty:", queue.IsEmpty())
	d.println("Size:", queue.Size())
	return nil
}

func (d *demo) emptyErrors() error {
	q, err := collections.NewRingBufferQueueWithCapacity[int](d.capacity)
	if err != nil {
		return err
	}
	if _, err := q.Dequeue(); errors.Is(err, collections.ErrEmptyCollection) {
		d.log.WithError(err).Debug("dequeue on empty queue")
		d.println("Caught error on dequeue:", err)
	} else {
		return fmt.Errorf("dequeue on empty queue returned %v", err)
	}
	if _, err := q.Peek(); errors.Is(err, collections.ErrEmptyCollection) {
		d.log.WithError(err).Debug("peek on empty queue")
		d.println("Caught error on peek:", err)
	} else {
		return fmt.Errorf("peek on empty queue returned %v", err)
	}
	return nil
}

func (d *demo) contains() error {
	var queue collections.Queue[string] = collections.NewLinkedQueue[string]()
	queue.Enqueue("Apple")
	queue.Enqueue("Banana")
	queue.Enqueue("Orange")
	d.println(queue)
	for _, v := range []string{"Apple", "Grape", "Banana"} {
		d.println(fmt.Sprintf("Contains '%s': %t", v, queue.Contains(v)))
	}
	if _, err := queue.Dequeue(); err != nil {
		return err
	}
	d.println()
	d.println("After removing the first element:")
	d.println(queue)
	d.println(fmt.Sprintf("Contains '%s': %t", "Apple", queue.Contains("Apple")))
	return nil
}

// describe prints the queue, its size and its front element.
func describe[V any](d *demo, queue collections.Queue[V]) error {
	front, err := queue.Peek()
	if err != nil {
		return err
	}
	d.println(queue)
	d.println("Size:", queue.Size())
	d.println("Front:", front)
	return nil
}
