package workq

// Converting recursion to iteration
//
// A recursive walk such as resolving file includes
//
//  func visit(name string, seen map[string]bool) {
//      if seen[name] { return }
//      seen[name] = true
//      for _, inc := range includes(name) { visit(inc, seen) }
//  }
//
// becomes a loop over a Queue. The seen map moves into the queue, and the
// recursive call becomes Extend:
//
//  q, _ := workq.New("main.c")
//  for name := range q.All() {
//      q.Extend(includes(name)...)
//  }
//
// Notes:
//   - Visit order is breadth-first: items come out in the order they were
//     accepted, not the order a recursive walk would reach them.
//   - A unique queue remembers every key it ever accepted. Consumed items
//     are not re-added, which is what stops cycles. Use NewNonUnique when
//     repeats are wanted or T is not comparable and no key exists.
//   - When items are large or not comparable, key them by a small
//     identifier with NewWithKey:
//
//  q, _ := workq.NewWithKey(func(n *Node) int64 { return n.ID }, root)
//
//   - Walk wraps the loop with cancellation and error handling:
//
//  err := workq.Walk(ctx, q, func(ctx context.Context, n *Node) error {
//      children, err := load(ctx, n)
//      if err != nil { return err }
//      _, err = q.Extend(children...)
//      return err
//  })
