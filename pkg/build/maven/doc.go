// Package maven builds component graphs from Maven multi-module projects.
//
// The root pom.xml is read and its <modules> are followed recursively.
// Aggregator modules (those declaring modules of their own) are walked but
// are not components. Every leaf module becomes one component keyed by its
// artifactId, in the order the reactor declares it.
//
// A leaf module's dependency list holds the artifactIds of its dependencies
// that share the module's groupId; other dependencies are third-party and
// ignored. The groupId is inherited from <parent> when a module omits it.
// Only direct dependencies declared in each pom are used: no property
// resolution beyond the project groupId, no dependencyManagement, no version
// mediation.
package maven
