// Package planner answers the railway questions the rest of the module is
// built for:
//
//   - CheapestRenovation: which lines to renovate so every city stays
//     connected at minimum cost (MST over renovation cost).
//   - ShortestRoute / ShortestRouteAvoiding: shortest route in km, optionally
//     with a station closed for works (Dijkstra over a blocked view).
//   - FastestRoute / FastestRouteVia: fastest route in minutes, optionally
//     through an intermediate city.
//   - CrossCheck: Dijkstra against Bellman-Ford on any core.View.
//   - Summary: city and line counts plus connected components (BFS).
//
// A Planner is read-only and safe for concurrent use. Logging goes through
// a logrus.FieldLogger at debug level.
package planner
