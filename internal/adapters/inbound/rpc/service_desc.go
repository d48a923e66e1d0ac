package rpc

import (
	"context"
	"encoding/json"

	"github.com/Leozerbib/gile-back-sub000/internal/usecases"
	"google.golang.org/grpc"
	"google.golang.org/grpc/encoding"
)

// The service descriptors are maintained by hand: requests and responses
// travel as JSON payloads, so there is no generated code to lean on.
// Clients select the codec with grpc.CallContentSubtype(JSONCodecName).
const JSONCodecName = "json"

func init() {
	encoding.RegisterCodec(jsonCodec{})
}

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

func (jsonCodec) Name() string {
	return JSONCodecName
}

// EmptyResponse is the payload of operations that only report success.
type EmptyResponse struct{}

type (
	// TicketServiceServer is the contract the ticket service descriptor is
	// registered against.
	TicketServiceServer interface {
		CreateTicket(ctx context.Context, req *CreateTicketRequest) (*TicketResponse, error)
		GetTicket(ctx context.Context, req *GetTicketRequest) (*TicketResponse, error)
		SearchTickets(ctx context.Context, req *SearchTicketsRequest) (*TicketPageResponse, error)
		UpdateTicket(ctx context.Context, req *UpdateTicketRequest) (*TicketResponse, error)
		TransitionTicket(ctx context.Context, req *TransitionTicketRequest) (*TicketResponse, error)
		MoveTicket(ctx context.Context, req *MoveTicketRequest) (*TicketResponse, error)
		AssignTicket(ctx context.Context, req *AssignTicketRequest) (*TicketResponse, error)
		DeleteTicket(ctx context.Context, req *DeleteTicketRequest) error
	}

	SprintServiceServer interface {
		CreateSprint(ctx context.Context, req *CreateSprintRequest) (*SprintResponse, error)
		GetSprint(ctx context.Context, req *GetSprintRequest) (*SprintResponse, error)
		SearchSprints(ctx context.Context, req *SearchSprintsRequest) (*SprintPageResponse, error)
		UpdateSprint(ctx context.Context, req *UpdateSprintRequest) (*SprintResponse, error)
		StartSprint(ctx context.Context, req *StartSprintRequest) (*SprintResponse, error)
		CompleteSprint(ctx context.Context, req *CompleteSprintRequest) (*SprintResponse, error)
		DeleteSprint(ctx context.Context, req *DeleteSprintRequest) error
	}

	ProjectServiceServer interface {
		CreateProject(ctx context.Context, req *CreateProjectRequest) (*ProjectResponse, error)
		GetProject(ctx context.Context, req *GetProjectRequest) (*ProjectResponse, error)
		SearchProjects(ctx context.Context, req *SearchProjectsRequest) (*ProjectPageResponse, error)
		UpdateProject(ctx context.Context, req *UpdateProjectRequest) (*ProjectResponse, error)
		ArchiveProject(ctx context.Context, req *ArchiveProjectRequest) (*ProjectResponse, error)
		DeleteProject(ctx context.Context, req *DeleteProjectRequest) error
	}
)

// RegisterServices wires the entity handlers into the given server.
func RegisterServices(server grpc.ServiceRegistrar, app *usecases.Application) {
	server.RegisterService(&ticketServiceDesc, NewTicketsHandler(app))
	server.RegisterService(&sprintServiceDesc, NewSprintsHandler(app))
	server.RegisterService(&projectServiceDesc, NewProjectsHandler(app))
}

type methodHandler = func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error)

func unary[Req any](fullMethod string, invoke func(srv any, ctx context.Context, req *Req) (any, error)) methodHandler {
	return func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
		in := new(Req)
		if err := dec(in); err != nil {
			return nil, err
		}

		if interceptor == nil {
			return invoke(srv, ctx, in)
		}

		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod}

		return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
			return invoke(srv, ctx, req.(*Req))
		})
	}
}

var ticketServiceDesc = grpc.ServiceDesc{
	ServiceName: "tracker.v1.TicketService",
	HandlerType: (*TicketServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateTicket",
			Handler: unary("/tracker.v1.TicketService/CreateTicket", func(srv any, ctx context.Context, req *CreateTicketRequest) (any, error) {
				return srv.(TicketServiceServer).CreateTicket(ctx, req)
			}),
		},
		{
			MethodName: "GetTicket",
			Handler: unary("/tracker.v1.TicketService/GetTicket", func(srv any, ctx context.Context, req *GetTicketRequest) (any, error) {
				return srv.(TicketServiceServer).GetTicket(ctx, req)
			}),
		},
		{
			MethodName: "SearchTickets",
			Handler: unary("/tracker.v1.TicketService/SearchTickets", func(srv any, ctx context.Context, req *SearchTicketsRequest) (any, error) {
				return srv.(TicketServiceServer).SearchTickets(ctx, req)
			}),
		},
		{
			MethodName: "UpdateTicket",
			Handler: unary("/tracker.v1.TicketService/UpdateTicket", func(srv any, ctx context.Context, req *UpdateTicketRequest) (any, error) {
				return srv.(TicketServiceServer).UpdateTicket(ctx, req)
			}),
		},
		{
			MethodName: "TransitionTicket",
			Handler: unary("/tracker.v1.TicketService/TransitionTicket", func(srv any, ctx context.Context, req *TransitionTicketRequest) (any, error) {
				return srv.(TicketServiceServer).TransitionTicket(ctx, req)
			}),
		},
		{
			MethodName: "MoveTicket",
			Handler: unary("/tracker.v1.TicketService/MoveTicket", func(srv any, ctx context.Context, req *MoveTicketRequest) (any, error) {
				return srv.(TicketServiceServer).MoveTicket(ctx, req)
			}),
		},
		{
			MethodName: "AssignTicket",
			Handler: unary("/tracker.v1.TicketService/AssignTicket", func(srv any, ctx context.Context, req *AssignTicketRequest) (any, error) {
				return srv.(TicketServiceServer).AssignTicket(ctx, req)
			}),
		},
		{
			MethodName: "DeleteTicket",
			Handler: unary("/tracker.v1.TicketService/DeleteTicket", func(srv any, ctx context.Context, req *DeleteTicketRequest) (any, error) {
				if err := srv.(TicketServiceServer).DeleteTicket(ctx, req); err != nil {
					return nil, err
				}

				return &EmptyResponse{}, nil
			}),
		},
	},
	Streams: []grpc.StreamDesc{},
}

var sprintServiceDesc = grpc.ServiceDesc{
	ServiceName: "tracker.v1.SprintService",
	HandlerType: (*SprintServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateSprint",
			Handler: unary("/tracker.v1.SprintService/CreateSprint", func(srv any, ctx context.Context, req *CreateSprintRequest) (any, error) {
				return srv.(SprintServiceServer).CreateSprint(ctx, req)
			}),
		},
		{
			MethodName: "GetSprint",
			Handler: unary("/tracker.v1.SprintService/GetSprint", func(srv any, ctx context.Context, req *GetSprintRequest) (any, error) {
				return srv.(SprintServiceServer).GetSprint(ctx, req)
			}),
		},
		{
			MethodName: "SearchSprints",
			Handler: unary("/tracker.v1.SprintService/SearchSprints", func(srv any, ctx context.Context, req *SearchSprintsRequest) (any, error) {
				return srv.(SprintServiceServer).SearchSprints(ctx, req)
			}),
		},
		{
			MethodName: "UpdateSprint",
			Handler: unary("/tracker.v1.SprintService/UpdateSprint", func(srv any, ctx context.Context, req *UpdateSprintRequest) (any, error) {
				return srv.(SprintServiceServer).UpdateSprint(ctx, req)
			}),
		},
		{
			MethodName: "StartSprint",
			Handler: unary("/tracker.v1.SprintService/StartSprint", func(srv any, ctx context.Context, req *StartSprintRequest) (any, error) {
				return srv.(SprintServiceServer).StartSprint(ctx, req)
			}),
		},
		{
			MethodName: "CompleteSprint",
			Handler: unary("/tracker.v1.SprintService/CompleteSprint", func(srv any, ctx context.Context, req *CompleteSprintRequest) (any, error) {
				return srv.(SprintServiceServer).CompleteSprint(ctx, req)
			}),
		},
		{
			MethodName: "DeleteSprint",
			Handler: unary("/tracker.v1.SprintService/DeleteSprint", func(srv any, ctx context.Context, req *DeleteSprintRequest) (any, error) {
				if err := srv.(SprintServiceServer).DeleteSprint(ctx, req); err != nil {
					return nil, err
				}

				return &EmptyResponse{}, nil
			}),
		},
	},
	Streams: []grpc.StreamDesc{},
}

var projectServiceDesc = grpc.ServiceDesc{
	ServiceName: "tracker.v1.ProjectService",
	HandlerType: (*ProjectServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateProject",
			Handler: unary("/tracker.v1.ProjectService/CreateProject", func(srv any, ctx context.Context, req *CreateProjectRequest) (any, error) {
				return srv.(ProjectServiceServer).CreateProject(ctx, req)
			}),
		},
		{
			MethodName: "GetProject",
			Handler: unary("/tracker.v1.ProjectService/GetProject", func(srv any, ctx context.Context, req *GetProjectRequest) (any, error) {
				return srv.(ProjectServiceServer).GetProject(ctx, req)
			}),
		},
		{
			MethodName: "SearchProjects",
			Handler: unary("/tracker.v1.ProjectService/SearchProjects", func(srv any, ctx context.Context, req *SearchProjectsRequest) (any, error) {
				return srv.(ProjectServiceServer).SearchProjects(ctx, req)
			}),
		},
		{
			MethodName: "UpdateProject",
			Handler: unary("/tracker.v1.ProjectService/UpdateProject", func(srv any, ctx context.Context, req *UpdateProjectRequest) (any, error) {
				return srv.(ProjectServiceServer).UpdateProject(ctx, req)
			}),
		},
		{
			MethodName: "ArchiveProject",
			Handler: unary("/tracker.v1.ProjectService/ArchiveProject", func(srv any, ctx context.Context, req *ArchiveProjectRequest) (any, error) {
				return srv.(ProjectServiceServer).ArchiveProject(ctx, req)
			}),
		},
		{
			MethodName: "DeleteProject",
			Handler: unary("/tracker.v1.ProjectService/DeleteProject", func(srv any, ctx context.Context, req *DeleteProjectRequest) (any, error) {
				if err := srv.(ProjectServiceServer).DeleteProject(ctx, req); err != nil {
					return nil, err
				}

				return &EmptyResponse{}, nil
			}),
		},
	},
	Streams: []grpc.StreamDesc{},
}
