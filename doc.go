/*
Package pcb provides a discrete-time hardware circuit simulator built
around a small board-description language.

Chips are stateful components with typed, directional pins that satisfy
the ChipInterface contract. A board declaratively shorts chip pins
together and exposes a subset of them on its own boundary; the board
compiler validates the description and lowers it into a connection plan
that the runtime uses to propagate values once per tick.

Boards themselves satisfy ChipInterface, so they can be nested inside
larger boards.

The sub-package chiplib provides a small library of example chips
(gates, a clocked register, a tristate bus driver) used by the test
suite. The sub-package pcbtest
provides test helpers for comparing chips and scripting stimulus.
*/
package pcb
