package glfwhost

import (
	"ambusnake/internal/assets"
	"ambusnake/internal/gfx"
	"ambusnake/internal/platform"
	"ambusnake/internal/sprite"
)

// messageOverlay draws the open message box centred over the frame. The
// texture is re-rendered only when the message changes.
type messageOverlay struct {
	texture gfx.Texture
	sprite  *sprite.Sprite
	shown   platform.Message
	valid   bool
}

func newMessageOverlay(ctx *gfx.Context) (*messageOverlay, error) {
	progs, err := sprite.Compile(ctx)
	if err != nil {
		return nil, err
	}
	tex, err := ctx.CreateTexture(assets.Solid(assets.Palette.Panel, assets.MessageWidth, assets.MessageHeight), assets.MessageWidth, assets.MessageHeight)
	if err != nil {
		return nil, err
	}
	return &messageOverlay{
		texture: tex,
		sprite:  sprite.New(ctx, progs, tex, false),
	}, nil
}

func (o *messageOverlay) draw(ctx *gfx.Context, msg platform.Message) error {
	if !o.valid || msg != o.shown {
		if err := ctx.UpdateTexture(o.texture, assets.RenderMessage(msg.Caption, msg.Body)); err != nil {
			return err
		}
		o.shown, o.valid = msg, true
	}
	o.sprite.DrawAt(ctx, 0, 0, 0)
	ctx.EndRenderPass()
	ctx.CommitFrame()
	return nil
}
