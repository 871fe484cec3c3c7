// Package production models manufacturing work requested for an order.
//
// An Operation is created solely as a side effect of an order status transition and
// is immutable afterwards except for its status, which manufacturing-side collaborators
// advance pending → in_progress → completed. Each operation remembers the transition
// episode that triggered it; the pair (order, type, episode) identifies one logical
// creation request.
package production
